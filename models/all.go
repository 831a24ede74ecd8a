package models

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&AdminUser{},
		&AuthSession{},
		&Profile{},
		&Tag{},
		&Project{},
		&ProjectTag{},
		&Experience{},
		&ExperienceTechnology{},
		&Skill{},
		&Gallery{},
		&Certificate{},
	}
}

// TableNames maps table names to the model struct for reports.
func TableNames() map[string]any {
	return map[string]any{
		"admin_users":             AdminUser{},
		"auth_sessions":           AuthSession{},
		"profile":                 Profile{},
		"tags":                    Tag{},
		"projects":                Project{},
		"project_tags":            ProjectTag{},
		"experiences":             Experience{},
		"experience_technologies": ExperienceTechnology{},
		"skills":                  Skill{},
		"galleries":               Gallery{},
		"certificates":            Certificate{},
	}
}
