// Package deedtpl assigns positional "penghadap" tokens to the parties of an
// activity and substitutes them into a deed template. Party positions come
// from the explicit pivot order, so the numbering survives party add/remove
// and matches the signature layout on the printed deed.
package deedtpl

import (
	"fmt"
	"sort"
	"strings"
)

// fallbackOrder sorts parties without an explicit order after every ordered
// party, ties broken by id.
const fallbackOrder = 999

// Party is the minimal projection deedtpl needs of an activity client.
type Party struct {
	ID    uint
	Name  string
	Email string
	Order *int
}

// missing is rendered for any token whose value is unknown.
const missing = "-"

// SortParties orders parties by (order, id) ascending, order defaulting to
// 999 when absent. The sort is stable.
func SortParties(parties []Party) []Party {
	out := make([]Party, len(parties))
	copy(out, parties)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := fallbackOrder, fallbackOrder
		if out[i].Order != nil {
			oi = *out[i].Order
		}
		if out[j].Order != nil {
			oj = *out[j].Order
		}
		if oi != oj {
			return oi < oj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// BuildTokens maps 1-indexed penghadapN_* keys to party values, with "-" for
// anything unknown. Extra entries are merged in on top.
func BuildTokens(parties []Party, extra map[string]string) map[string]string {
	tokens := make(map[string]string, len(parties)*2+len(extra))
	for i, p := range SortParties(parties) {
		n := i + 1
		name := p.Name
		if name == "" {
			name = missing
		}
		email := p.Email
		if email == "" {
			email = missing
		}
		tokens[fmt.Sprintf("penghadap%d_name", n)] = name
		tokens[fmt.Sprintf("penghadap%d_email", n)] = email
	}
	for k, v := range extra {
		if v == "" {
			v = missing
		}
		tokens[k] = v
	}
	return tokens
}

// ReplaceTokens substitutes {{token}} and legacy single-brace {token} forms
// for every key in the map. Tokens absent from the map are left verbatim.
func ReplaceTokens(template string, tokens map[string]string) string {
	out := template
	for key, value := range tokens {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
