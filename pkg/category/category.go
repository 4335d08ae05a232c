// Package category assigns repository attribute names to semantic display
// groups. Each entity kind (object, user, group) carries its own ordered
// rule table; rules are evaluated top to bottom and the first match wins.
package category

import (
	"fmt"
	"strings"
)

// EntityKind identifies what kind of repository entity a dump describes.
type EntityKind int

const (
	// KindObject is a generic repository object (document, folder, type...).
	KindObject EntityKind = iota
	// KindUser is a repository user account.
	KindUser
	// KindGroup is a repository group.
	KindGroup
)

// String returns the lowercase name used on the CLI and in config files.
func (k EntityKind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindGroup:
		return "group"
	default:
		return "object"
	}
}

// ParseEntityKind converts a CLI/config token into an EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "object":
		return KindObject, nil
	case "user":
		return KindUser, nil
	case "group":
		return KindGroup, nil
	default:
		return KindObject, fmt.Errorf("unknown entity kind %q (want object, user or group)", s)
	}
}

// Group is a semantic display bucket for an attribute.
type Group string

const (
	GroupSystem      Group = "system"
	GroupInternal    Group = "internal"
	GroupApplication Group = "application"
	GroupStandard    Group = "standard"
	GroupIdentity    Group = "identity"
	GroupAccess      Group = "access"
	GroupPreferences Group = "preferences"
	GroupMembers     Group = "members"
	GroupOther       Group = "other"
)

// ParseGroup validates a group token from a config file.
func ParseGroup(s string) (Group, error) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case GroupSystem, GroupInternal, GroupApplication, GroupStandard,
		GroupIdentity, GroupAccess, GroupPreferences, GroupMembers, GroupOther:
		return g, nil
	}
	return "", fmt.Errorf("unknown attribute group %q", s)
}

// rule pairs a name predicate with the group it assigns.
type rule struct {
	match func(name string) bool
	group Group
}

// ruleTable is one entity kind's ordered rule list plus its fallback group.
type ruleTable struct {
	rules    []rule
	fallback Group
}

func nameSet(names ...string) func(string) bool {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

func prefix(p string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, p) }
}

// Identity, access and preference attribute names as emitted by the server
// for user and group dumps. The sets are deliberately exact-match: prefix
// rules come after them so e.g. user_group_name is not swallowed early.
var (
	userIdentityNames = nameSet(
		"user_name",
		"user_login_name",
		"user_login_domain",
		"user_os_name",
		"user_os_domain",
		"user_address",
		"user_db_name",
		"user_source",
		"user_ldap_dn",
		"user_global_unique_id",
		"user_initials",
		"description",
	)
	userAccessNames = nameSet(
		"acl_name",
		"acl_domain",
		"user_privileges",
		"user_xprivileges",
		"client_capability",
		"user_state",
		"user_group_name",
		"alias_set_id",
		"globally_managed",
	)
	userPreferenceNames = nameSet(
		"default_folder",
		"home_docbase",
		"user_delegation",
		"workflow_disabled",
		"failed_auth_attempt",
		"restricted_folder_ids",
	)

	groupIdentityNames = nameSet(
		"group_name",
		"group_display_name",
		"group_class",
		"group_address",
		"group_source",
		"group_global_unique_id",
		"group_native_room_id",
		"owner_name",
		"description",
	)
	groupAccessNames = nameSet(
		"acl_name",
		"acl_domain",
		"group_admin",
		"is_private",
		"is_protected",
		"is_dynamic",
		"is_dynamic_default",
		"alias_set_id",
		"globally_managed",
	)
	groupMemberNames = nameSet(
		"users_names",
		"groups_names",
	)
)

// Tables holds the per-kind categorization rules. The zero value is not
// usable; start from DefaultTables.
type Tables struct {
	byKind map[EntityKind]*ruleTable
}

// DefaultTables returns the built-in rule tables.
func DefaultTables() *Tables {
	return &Tables{byKind: map[EntityKind]*ruleTable{
		KindObject: {
			rules: []rule{
				{prefix("r_"), GroupSystem},
				{prefix("i_"), GroupInternal},
				{prefix("a_"), GroupApplication},
			},
			fallback: GroupStandard,
		},
		KindUser: {
			rules: []rule{
				{userIdentityNames, GroupIdentity},
				{userAccessNames, GroupAccess},
				{userPreferenceNames, GroupPreferences},
				{prefix("r_"), GroupSystem},
				{prefix("i_"), GroupSystem},
			},
			fallback: GroupOther,
		},
		KindGroup: {
			rules: []rule{
				{groupMemberNames, GroupMembers},
				{groupIdentityNames, GroupIdentity},
				{groupAccessNames, GroupAccess},
				{prefix("r_"), GroupSystem},
				{prefix("i_"), GroupSystem},
			},
			fallback: GroupOther,
		},
	}}
}

// Extend prepends an exact-name rule to kind's table, so config-supplied
// rules win over the built-ins.
func (t *Tables) Extend(kind EntityKind, group Group, names ...string) {
	if len(names) == 0 {
		return
	}
	rt, ok := t.byKind[kind]
	if !ok {
		return
	}
	rt.rules = append([]rule{{nameSet(names...), group}}, rt.rules...)
}

// Categorize returns the display group for an attribute name.
func (t *Tables) Categorize(kind EntityKind, name string) Group {
	rt, ok := t.byKind[kind]
	if !ok {
		rt = t.byKind[KindObject]
	}
	for _, r := range rt.rules {
		if r.match(name) {
			return r.group
		}
	}
	return rt.fallback
}

var defaultTables = DefaultTables()

// Categorize consults the built-in rule tables.
func Categorize(kind EntityKind, name string) Group {
	return defaultTables.Categorize(kind, name)
}

// Display order per entity kind. Empty groups are dropped at composition
// time, so listing a group here does not force it to appear.
var displayOrders = map[EntityKind][]Group{
	KindObject: {GroupStandard, GroupApplication, GroupSystem, GroupInternal},
	KindUser:   {GroupIdentity, GroupAccess, GroupPreferences, GroupOther, GroupSystem},
	KindGroup:  {GroupMembers, GroupIdentity, GroupAccess, GroupOther, GroupSystem},
}

// DisplayOrder returns the declared group presentation order for a kind.
func DisplayOrder(kind EntityKind) []Group {
	order, ok := displayOrders[kind]
	if !ok {
		order = displayOrders[KindObject]
	}
	out := make([]Group, len(order))
	copy(out, order)
	return out
}
