package roster

// SampleGroups is the roster shown in the playground.
func SampleGroups() []Group {
	return []Group{
		{
			ID:          "design-engineer",
			Title:       "Design Engineer",
			DefaultOpen: true,
			Members: []Member{
				{ID: "damian", Name: "Damian Edward", JoinedYear: "23", Initials: "DE"},
				{ID: "clara", Name: "Clara Benton", JoinedYear: "23", Initials: "CB"},
				{ID: "ethan", Name: "Ethan Miles", JoinedYear: "24", Initials: "EM"},
				{ID: "edward", Name: "Edward Freece", JoinedYear: "24", Initials: "EF"},
				{ID: "susy", Name: "Susy Xerxes", JoinedYear: "25", Initials: "SX"},
			},
		},
		{
			ID:    "software-engineer",
			Title: "Software Engineer",
			Members: []Member{
				{ID: "alex", Name: "Alex Johnson", JoinedYear: "22", Initials: "AJ"},
				{ID: "maria", Name: "Maria Garcia", JoinedYear: "23", Initials: "MG"},
				{ID: "david", Name: "David Chen", JoinedYear: "24", Initials: "DC"},
			},
		},
		{
			ID:    "product-owner",
			Title: "Product Owner",
			Members: []Member{
				{ID: "sarah", Name: "Sarah Wilson", JoinedYear: "21", Initials: "SW"},
				{ID: "mike", Name: "Mike Thompson", JoinedYear: "22", Initials: "MT"},
			},
		},
	}
}
