// Package docs serves the embedded Java API documentation index. The JSON
// payload is compiled into the binary and indexed once, on first access; the
// package is read-only and queried by the diagnostic enricher and the docs
// command.
package docs

import (
	"sort"
	"strings"

	"github.com/javelin-build/javelin/internal/diag"
)

// Docs is the root of the embedded documentation payload.
type Docs struct {
	Packages []Package `json:"packages"`
}

// Package groups the classes of one Java package.
type Package struct {
	Name        string  `json:"package"`
	Description string  `json:"description"`
	Classes     []Class `json:"classes"`
}

// Class is one documented class with its methods.
type Class struct {
	Name    string   `json:"name"`
	Methods []Method `json:"methods"`
}

// Method is a named method with one entry per overload.
type Method struct {
	Name      string     `json:"name"`
	Overloads []Overload `json:"overloads"`
}

// Overload is a single method signature.
type Overload struct {
	Signature   string `json:"signature"`
	Description string `json:"description"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

type classRef struct {
	pkg int
	cls int
}

// Index provides fast class lookups over the docs payload by simple and
// fully-qualified name.
type Index struct {
	docs    Docs
	classes map[string]classRef
}

// BuildIndex indexes the payload for lookups.
func BuildIndex(d Docs) *Index {
	ix := &Index{
		docs:    d,
		classes: make(map[string]classRef),
	}
	for p, pkg := range d.Packages {
		for c, class := range pkg.Classes {
			ref := classRef{pkg: p, cls: c}
			ix.classes[pkg.Name+"."+class.Name] = ref
			ix.classes[class.Name] = ref
		}
	}
	return ix
}

// Class looks up a class by simple or fully-qualified name.
func (ix *Index) Class(name string) (*Class, bool) {
	ref, ok := ix.classes[name]
	if !ok {
		return nil, false
	}
	return &ix.docs.Packages[ref.pkg].Classes[ref.cls], true
}

// ClassWithPackage looks up a class together with its package.
func (ix *Index) ClassWithPackage(name string) (*Package, *Class, bool) {
	ref, ok := ix.classes[name]
	if !ok {
		return nil, nil, false
	}
	pkg := &ix.docs.Packages[ref.pkg]
	return pkg, &pkg.Classes[ref.cls], true
}

// SearchClasses returns the sorted fully-qualified names of classes whose
// name contains query, case-insensitively.
func (ix *Index) SearchClasses(query string) []string {
	query = strings.ToLower(query)
	matches := make([]string, 0)
	for _, pkg := range ix.docs.Packages {
		for _, class := range pkg.Classes {
			if strings.Contains(strings.ToLower(class.Name), query) {
				matches = append(matches, pkg.Name+"."+class.Name)
			}
		}
	}
	sort.Strings(matches)
	return matches
}

// Methods enumerates the methods of a class, flattened to one entry per
// overload. Implements the diagnostic enricher's DocSource.
func (ix *Index) Methods(class string) ([]diag.MethodSig, bool) {
	c, ok := ix.Class(class)
	if !ok {
		return nil, false
	}
	sigs := make([]diag.MethodSig, 0)
	for _, m := range c.Methods {
		for _, o := range m.Overloads {
			sigs = append(sigs, diag.MethodSig{Name: m.Name, Signature: o.Signature})
		}
	}
	return sigs, true
}
