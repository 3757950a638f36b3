package dialect

import (
	"sync"

	"phpfix/internal/token"
)

// kindDef fixes the id and availability range of one named kind.
// The id is derived from the position in kindDefs and is stable across
// versions; availability is the only thing that varies.
type kindDef struct {
	name  string
	since Version // zero value: defined in every supported version
	until Version // zero value: still defined
}

// kindBase keeps named kind ids clear of raw byte values, which the
// upstream lexer emits as bare tokens.
const kindBase = 256

// kindDefs is append-only: inserting in the middle would renumber every
// kind after the insertion point.
var kindDefs = []kindDef{
	{name: "T_WHITESPACE"},
	{name: "T_COMMENT"},
	{name: "T_DOC_COMMENT"},
	{name: "T_STRING"},
	{name: "T_VARIABLE"},
	{name: "T_CONSTANT_ENCAPSED_STRING"},
	{name: "T_ENCAPSED_AND_WHITESPACE"},
	{name: "T_LNUMBER"},
	{name: "T_DNUMBER"},
	{name: "T_INLINE_HTML"},
	{name: "T_OPEN_TAG"},
	{name: "T_OPEN_TAG_WITH_ECHO"},
	{name: "T_CLOSE_TAG"},
	{name: "T_START_HEREDOC"},
	{name: "T_END_HEREDOC"},
	{name: "T_OBJECT_OPERATOR"},
	{name: "T_DOUBLE_ARROW"},
	{name: "T_DOUBLE_COLON"},
	{name: "T_ELLIPSIS", since: V5_6},
	{name: "T_SPACESHIP", since: V7_0},
	{name: "T_COALESCE", since: V7_0},
	{name: "T_COALESCE_EQUAL", since: V7_4},
	{name: "T_ATTRIBUTE", since: V8_0},
	{name: "T_NULLSAFE_OBJECT_OPERATOR", since: V8_0},
	{name: "T_NAME_QUALIFIED", since: V8_0},
	{name: "T_NAME_FULLY_QUALIFIED", since: V8_0},
	{name: "T_NAME_RELATIVE", since: V8_0},

	{name: "T_ARRAY_CAST"},
	{name: "T_BOOL_CAST"},
	{name: "T_DOUBLE_CAST"},
	{name: "T_INT_CAST"},
	{name: "T_OBJECT_CAST"},
	{name: "T_STRING_CAST"},
	// the (unset) cast was dropped in 8.0
	{name: "T_UNSET_CAST", until: V8_0},

	{name: "T_ABSTRACT"},
	{name: "T_ARRAY"},
	{name: "T_AS"},
	{name: "T_BREAK"},
	{name: "T_CALLABLE", since: V5_4},
	{name: "T_CASE"},
	{name: "T_CATCH"},
	{name: "T_CLASS"},
	{name: "T_CLONE"},
	{name: "T_CONST"},
	{name: "T_CONTINUE"},
	{name: "T_DECLARE"},
	{name: "T_DEFAULT"},
	{name: "T_DO"},
	{name: "T_ECHO"},
	{name: "T_ELSE"},
	{name: "T_ELSEIF"},
	{name: "T_EMPTY"},
	{name: "T_ENDDECLARE"},
	{name: "T_ENDFOR"},
	{name: "T_ENDFOREACH"},
	{name: "T_ENDIF"},
	{name: "T_ENDSWITCH"},
	{name: "T_ENDWHILE"},
	{name: "T_ENUM", since: V8_1},
	{name: "T_EVAL"},
	{name: "T_EXIT"},
	{name: "T_EXTENDS"},
	{name: "T_FINAL"},
	{name: "T_FINALLY", since: V5_5},
	{name: "T_FN", since: V7_4},
	{name: "T_FOR"},
	{name: "T_FOREACH"},
	{name: "T_FUNCTION"},
	{name: "T_GLOBAL"},
	{name: "T_GOTO"},
	{name: "T_HALT_COMPILER"},
	{name: "T_IF"},
	{name: "T_IMPLEMENTS"},
	{name: "T_INCLUDE"},
	{name: "T_INCLUDE_ONCE"},
	{name: "T_INSTANCEOF"},
	{name: "T_INSTEADOF", since: V5_4},
	{name: "T_INTERFACE"},
	{name: "T_ISSET"},
	{name: "T_LIST"},
	{name: "T_LOGICAL_AND"},
	{name: "T_LOGICAL_OR"},
	{name: "T_LOGICAL_XOR"},
	{name: "T_MATCH", since: V8_0},
	{name: "T_NAMESPACE"},
	{name: "T_NEW"},
	{name: "T_PRINT"},
	{name: "T_PRIVATE"},
	{name: "T_PROTECTED"},
	{name: "T_PUBLIC"},
	{name: "T_READONLY", since: V8_1},
	{name: "T_REQUIRE"},
	{name: "T_REQUIRE_ONCE"},
	{name: "T_RETURN"},
	{name: "T_STATIC"},
	{name: "T_SWITCH"},
	{name: "T_THROW"},
	{name: "T_TRAIT", since: V5_4},
	{name: "T_TRY"},
	{name: "T_UNSET"},
	{name: "T_USE"},
	{name: "T_VAR"},
	{name: "T_WHILE"},
	{name: "T_YIELD", since: V5_5},
	{name: "T_YIELD_FROM", since: V7_0},
}

type registry struct {
	version Version
	byName  map[string]token.Kind
	byID    map[token.Kind]string
}

func (r *registry) Lookup(name string) (token.Kind, bool) {
	k, ok := r.byName[name]
	return k, ok
}

func (r *registry) Name(k token.Kind) (string, bool) {
	name, ok := r.byID[k]
	return name, ok
}

// registries кэширует по одному registry на версию; сборка идемпотентна.
var registries sync.Map // Version -> *registry

// Registry returns the lexical-kind registry of one PHP version.
// Registries are immutable and cached for the lifetime of the process.
func Registry(v Version) token.Registry {
	if cached, ok := registries.Load(v); ok {
		return cached.(*registry)
	}
	built := buildRegistry(v)
	actual, _ := registries.LoadOrStore(v, built)
	return actual.(*registry)
}

func buildRegistry(v Version) *registry {
	r := &registry{
		version: v,
		byName:  make(map[string]token.Kind, len(kindDefs)),
		byID:    make(map[token.Kind]string, len(kindDefs)),
	}
	var zero Version
	for i, def := range kindDefs {
		if def.since != zero && v.Before(def.since) {
			continue
		}
		if def.until != zero && v.AtLeast(def.until) {
			continue
		}
		id := token.Kind(kindBase + i)
		r.byName[def.name] = id
		r.byID[id] = def.name
	}
	return r
}
