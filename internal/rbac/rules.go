package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"learner": {
		"interaction:view",
		"interaction:baseline",
		"attempt:submit",
		"attempt:view-own",
	},
	"author": {
		"interaction:create",
		"interaction:view",
		"interaction:view-answers",
		"interaction:baseline",
		"attempt:view-all",
	},
	"admin": {
		"*", // everything
	},
}
