// Package access maps identity-provider group claims onto project access
// levels.
package access

import (
	domainauth "github.com/kinship-labs/kinship-ui/internal/domain/auth"
)

// StaticMapper maps group names to access levels from static configuration.
type StaticMapper struct {
	ownerGroup  string
	editorGroup string
}

// NewStaticMapper creates a mapper from configured group names. A user in
// the owner group gets owner access, the editor group gets editor access,
// everyone else is read only.
func NewStaticMapper(ownerGroup, editorGroup string) *StaticMapper {
	return &StaticMapper{ownerGroup: ownerGroup, editorGroup: editorGroup}
}

// Map implements ports.AccessMapper.
func (m *StaticMapper) Map(groups []string) domainauth.AccessLevel {
	level := domainauth.AccessReadOnly
	for _, g := range groups {
		switch g {
		case m.ownerGroup:
			if m.ownerGroup != "" {
				return domainauth.AccessOwner
			}
		case m.editorGroup:
			if m.editorGroup != "" {
				level = domainauth.AccessEditor
			}
		}
	}
	return level
}
