package lockfile

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/matzehuels/lockgraph/pkg/bundle"
)

func normalize(name string) string { return bundle.NormalizeName(name) }

// purl returns the package URL of a PyPI package. An empty version yields a
// versionless purl.
func purl(name, version string) string {
	p := "pkg:pypi/" + normalize(name)
	if version != "" {
		p += "@" + url.PathEscape(version)
	}
	return p
}

// idAllocator hands out unique identifiers, suffixing repeats with #<n>.
type idAllocator map[string]int

func (a idAllocator) next(base string) string {
	a[base]++
	if n := a[base]; n > 1 {
		return fmt.Sprintf("%s#%d", base, n)
	}
	return base
}

var requirementName = regexp.MustCompile(`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)`)

// parseRequirementName extracts the distribution name from a PEP 508 requirement
// such as "requests[socks]>=2.31; python_version < '3.12'". Returns "" when
// the string does not start with a name.
func parseRequirementName(req string) string {
	m := requirementName.FindStringSubmatch(req)
	if m == nil {
		return ""
	}
	return m[1]
}
