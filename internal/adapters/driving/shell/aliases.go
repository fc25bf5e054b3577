package shell

import "sort"

// aliases maps the classic one-word assistant commands onto the command tree.
var aliases = map[string][]string{
	"add-phone":     {"phone", "add"},
	"change":        {"phone", "change"},
	"remove":        {"contact", "remove"},
	"all":           {"contact", "list"},
	"add-birthday":  {"contact", "birthday"},
	"show-birthday": {"contact", "birthday"},
	"add-email":     {"contact", "email"},
	"add-address":   {"contact", "address"},
	"find-by-phone": {"contact", "find-by-phone"},
	"find-by-email": {"contact", "find-by-email"},
	"add-note":      {"note", "add"},
	"edit-note":     {"note", "edit"},
	"remove-note":   {"note", "delete"},
	"all-notes":     {"note", "list"},
}

// Expand rewrites a classic command into its command-tree form.
// Other argument lists are returned unchanged.
func Expand(args []string) []string {
	if len(args) == 0 {
		return args
	}
	target, ok := aliases[args[0]]
	if !ok {
		return args
	}
	out := make([]string, 0, len(target)+len(args)-1)
	out = append(out, target...)
	return append(out, args[1:]...)
}

// AliasNames returns the classic command names, sorted.
func AliasNames() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
