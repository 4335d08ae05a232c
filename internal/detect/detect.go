// Package detect sniffs dump text to determine the entity kind.
package detect

import (
	"bufio"
	"bytes"

	"github.com/dctmtools/dumpview/pkg/category"
	"github.com/dctmtools/dumpview/pkg/dump"
)

// Attribute names that only appear in one kind of dump. users_names and
// groups_names are checked before the user_ prefix because a group dump
// also carries owner/description attributes shared with other kinds.
var (
	groupMarkers = map[string]bool{
		"group_name":   true,
		"users_names":  true,
		"groups_names": true,
		"group_class":  true,
	}
	userMarkers = map[string]bool{
		"user_name":       true,
		"user_login_name": true,
		"user_os_name":    true,
		"user_privileges": true,
	}
)

// sniffLineLimit bounds how far Sniff reads into the dump. Marker
// attributes appear near the top of well-formed dumps.
const sniffLineLimit = 200

// Sniff examines attribute names in the dump text to determine the entity
// kind. Falls back to KindObject when no marker attribute is found.
func Sniff(data []byte) category.EntityKind {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	sawUser := false
	for n := 0; scanner.Scan() && n < sniffLineLimit; n++ {
		ln := dump.ClassifyLine(scanner.Text())
		if ln.Kind != dump.Attribute {
			continue
		}
		if groupMarkers[ln.Name] {
			return category.KindGroup
		}
		if userMarkers[ln.Name] {
			sawUser = true
		}
	}
	if sawUser {
		return category.KindUser
	}
	return category.KindObject
}
