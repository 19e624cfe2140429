// Package domain contains the core types for dependency license notices.
package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Person represents an individual associated with a dependency, such as its
// author or one of its contributors.
type Person struct {
	// Name is the person's display name.
	Name string

	// Email is the person's email address. May be empty.
	Email string
}

// String renders the person as "Name <Email>", or just "Name" when no email
// is known.
func (p Person) String() string {
	if p.Email == "" {
		return p.Name
	}
	return p.Name + " <" + p.Email + ">"
}

// Repository describes where a dependency's source code lives.
type Repository struct {
	// Type is the version control system (e.g., "git").
	Type string

	// URL is the repository location.
	URL string
}

// Dependency describes one software dependency's metadata as provided by an
// external collector. Name, Version and License are required; everything
// else is optional.
type Dependency struct {
	// Name is the package name (e.g., "foo").
	Name string

	// Version is the package version (e.g., "1.0.0").
	Version string

	// License is the SPDX license expression (e.g., "MIT").
	License string

	// Private marks packages that are not published.
	Private bool

	// Description is a short human-readable summary. May be empty.
	Description string

	// Homepage is the project homepage URL. May be empty.
	Homepage string

	// Repository is the source repository. May be nil.
	Repository *Repository

	// Author is the primary author. May be nil.
	Author *Person

	// Contributors lists additional authors in their declared order.
	Contributors []Person
}

// String returns the short "name@version" form used in logs and as a
// deduplication key.
func (d *Dependency) String() string {
	return d.Name + "@" + d.Version
}

// Text renders the dependency as a fixed-layout text block: one line per
// populated field, joined with "\n", no trailing newline.
//
// Required fields always produce a line; optional fields produce a line only
// when set, without shifting the others:
//
//	Name: foo
//	Version: 1.0.0
//	License: MIT
//	Private: false
//	Description: ...       (optional)
//	Repository: <url>      (optional, type is never rendered)
//	Homepage: ...          (optional)
//	Author: A <a@x>        (optional, email suffix omitted when unset)
//	Contributors:          (optional, one indented line per contributor)
//	  B <b@x>
//	  C
//
// Text never fails and performs no validation; see Validate.
func (d *Dependency) Text() string {
	lines := make([]string, 0, 9+len(d.Contributors))

	lines = append(lines,
		"Name: "+d.Name,
		"Version: "+d.Version,
		"License: "+d.License,
		"Private: "+strconv.FormatBool(d.Private),
	)

	if d.Description != "" {
		lines = append(lines, "Description: "+d.Description)
	}
	if d.Repository != nil {
		lines = append(lines, "Repository: "+d.Repository.URL)
	}
	if d.Homepage != "" {
		lines = append(lines, "Homepage: "+d.Homepage)
	}
	if d.Author != nil {
		lines = append(lines, "Author: "+d.Author.String())
	}
	if len(d.Contributors) > 0 {
		lines = append(lines, "Contributors:")
		for _, c := range d.Contributors {
			lines = append(lines, "  "+c.String())
		}
	}

	return strings.Join(lines, "\n")
}

// Validate checks that the required fields are present. Each failure keeps
// the matching ErrMissing* sentinel in its cause chain so callers can test
// for it with errors.Is.
func (d *Dependency) Validate() error {
	if d.Name == "" {
		return zerr.Wrap(ErrMissingName, ErrInvalidRecord.Error())
	}
	if d.Version == "" {
		return zerr.With(zerr.Wrap(ErrMissingVersion, ErrInvalidRecord.Error()), "name", d.Name)
	}
	if d.License == "" {
		return zerr.With(zerr.Wrap(ErrMissingLicense, ErrInvalidRecord.Error()), "dependency", d.String())
	}
	return nil
}
