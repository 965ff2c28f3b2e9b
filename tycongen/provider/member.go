// Package provider implements input providers that turn constant set
// definitions (DSL files, YAML manifests, or existing Go const groups)
// into the intermediate representation consumed by the emitter.
package provider

import (
	"fmt"
	"go/constant"
	"go/token"
	"strings"

	"github.com/tyconlabs/tycon/tycongen/ir"
)

// memberResolver resolves declaration values for one definition: explicit
// values come from their expression, omitted values auto-increment from the
// previous resolved value, and the first declaration defaults to 0.
type memberResolver struct {
	enum     string
	resolved map[string]constant.Value // earlier members, for "Y = X"
	next     constant.Value
}

func newMemberResolver(enum string) *memberResolver {
	return &memberResolver{
		enum:     enum,
		resolved: make(map[string]constant.Value),
		next:     constant.MakeInt64(0),
	}
}

var one = constant.MakeInt64(1)

// resolve parses one raw declaration ("Green" or "Green = 5" or "Y = X")
// and returns the member with its resolved value. The raw text is preserved
// verbatim on the member.
func (r *memberResolver) resolve(raw string) (ir.Member, error) {
	name, expr, explicit := splitDecl(raw)
	if name == "" {
		return ir.Member{}, fmt.Errorf("%s: empty declaration %q", r.enum, raw)
	}

	value := r.next
	if explicit {
		var err error
		value, err = evalExpr(expr, func(ident string) (constant.Value, bool) {
			v, ok := r.resolved[ident]
			return v, ok
		})
		if err != nil {
			return ir.Member{}, fmt.Errorf("%s.%s: %w", r.enum, name, err)
		}
	}

	r.resolved[name] = value
	r.next = constant.BinaryOp(value, token.ADD, one)

	return ir.Member{
		Name:     name,
		Raw:      raw,
		Value:    value,
		Explicit: explicit,
	}, nil
}

// splitDecl splits a raw declaration into its name and optional value
// expression at the first '='.
func splitDecl(raw string) (name, expr string, explicit bool) {
	if i := strings.IndexByte(raw, '='); i >= 0 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:]), true
	}
	return strings.TrimSpace(raw), "", false
}
