package rhttp

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/onsberg/rhttp/internal/urltemplate"
)

// Reverser keeps track of named route templates and allows building URLs.
type Reverser struct {
	pats map[string]*urltemplate.Template
}

// NewReverser inits the reverser.
func NewReverser() *Reverser {
	return &Reverser{make(map[string]*urltemplate.Template)}
}

// Reverse reverses the named template into a url. Values are substituted for
// the template's captures in order: path captures first, then search captures.
func (r Reverser) Reverse(name string, vals ...string) (string, error) {
	pat, ok := r.pats[name]
	if !ok {
		return "", errors.Newf("no route named: %q, got: %v", name, lo.Keys(r.pats))
	}

	res, err := pat.Build(vals...)
	if err != nil {
		return "", errors.Wrap(err, "failed to build")
	}

	return res, nil
}

// NamedTemplate registers the template under a name for later reversing.
func (r Reverser) NamedTemplate(name string, tpl *urltemplate.Template) error {
	if _, exists := r.pats[name]; exists {
		return errors.Newf("route with name %q already exists", name)
	}

	r.pats[name] = tpl

	return nil
}
