package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pascal returns the exported Go name of a view or property identifier:
// "shopCase" and "shop_case" both become "ShopCase".
func pascal(s string) string {
	if strings.ContainsAny(s, "_-") {
		return inflect.Camelize(strings.ReplaceAll(s, "-", "_"))
	}
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// snake returns the snake-case form used for file names.
func snake(s string) string {
	return inflect.Underscore(s)
}

// receiver returns the receiver name of a type: its lowercased initials.
func receiver(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}

// reserved holds the names generated types use for their base fields and
// methods. Properties with these names get a trailing underscore.
var reserved = names(
	"Model", "Edges", "ID", "AsWrite", "AsRead", "LinkEdge", "Space", "ExternalID",
	"Record", "NodeType", "WriteBase", "WriteModel", "ExistingVersion", "NodeID",
	"WriteTo", "EnsureID", "NodeApply", "GraphQLModel", "Typename", "Version",
	"CreatedTime", "LastUpdatedTime", "DataRecord", "Query", "NodeAPI",
)

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// structField returns the Go field name of a property.
func structField(name string) string {
	f := pascal(name)
	if _, ok := reserved[f]; ok {
		return f + "_"
	}
	return f
}
