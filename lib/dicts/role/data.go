package roleprovider

var roles = []CareerRole{
	{
		ID:               "fullstack",
		Slug:             "full-stack-developer-intern",
		Title:            "Full Stack Developer",
		Type:             "Unpaid Internship",
		Location:         "Remote",
		Commitment:       "Flexible",
		ShortDescription: "Build frontend systems and backend logic. Fix bugs and optimize performance.",
		About:            "You will work on real production features, building both the frontend and backend of our core platform. This is a hands-on role where you will be expected to contribute code daily, learn modern frameworks, and understand the full lifecycle of a web application.",
		Responsibilities: []string{
			"Contribute to the development of our Next.js frontend.",
			"Assist in building and maintaining backend API routes.",
			"Debug and fix issues across the stack.",
			"Write clean, reusable, and documented code.",
			"Participate in code reviews and team discussions.",
			"Optimize application performance and responsiveness.",
		},
		Requirements: []string{
			"Basic JavaScript, HTML, CSS knowledge.",
			"Familiarity with Node.js and backend concepts.",
			"Strong willingness to learn and experiment.",
			"Understanding of Git and version control.",
			"Ability to work independently and ask questions when stuck.",
		},
		Benefits: []string{
			"Real startup exposure.",
			"Mentorship from senior developers.",
			"Experience certificate upon completion.",
			"Portfolio-worthy work on a live product.",
		},
		Culture: []string{
			"Stress-free environment.",
			"Learning-first approach.",
			"No micromanagement.",
			"Respectful and inclusive communication.",
		},
		FormFields: []FormField{
			{ID: "languages", Label: "Programming languages known", Type: "text", Required: true},
			{ID: "frameworks", Label: "Frameworks/tools familiarity", Type: "text", Required: true},
			{ID: "projects", Label: "Previous projects (links)", Type: "textarea", Required: true},
			{ID: "backend_exp", Label: "Do you have backend experience? Explain briefly.", Type: "textarea", Required: true},
		},
	},
	{
		ID:               "hr",
		Slug:             "hr-intern",
		Title:            "HR Internship",
		Type:             "Unpaid Internship",
		Location:         "Remote",
		Commitment:       "Flexible",
		ShortDescription: "Assist in managing applications, coordinating interviews, and building early HR processes.",
		About:            "Join our People Operations team to help us find and nurture talent. You will be instrumental in setting up the foundational HR processes for a growing startup, from recruitment to onboarding.",
		Responsibilities: []string{
			"Screen resumes and shortlist candidates.",
			"Coordinate interview schedules with the technical team.",
			"Help in drafting job descriptions and policy documents.",
			"Assist in virtual onboarding of new interns.",
			"Maintain candidate databases and application records.",
		},
		Requirements: []string{
			"Strong written and verbal communication skills.",
			"Interest in people operations and recruitment.",
			"Organized and structured approach to tasks.",
			"Proficiency with Google Workspace or similar tools.",
			"Empathetic and professional demeanor.",
		},
		Benefits: []string{
			"Real-world HR experience.",
			"Networking opportunities.",
			"Experience certificate upon completion.",
			"Insight into startup culture building.",
		},
		Culture: []string{
			"People-first mindset.",
			"Collaborative atmosphere.",
			"Zero pressure environment.",
			"Focus on long-term relationships.",
		},
		FormFields: []FormField{
			{ID: "comm_exp", Label: "Communication experience", Type: "textarea", Required: true},
			{ID: "people_mgmt", Label: "People management exposure", Type: "textarea", Required: true},
			{ID: "org_tools", Label: "Organizational tools used", Type: "text", Required: true},
			{ID: "why_hr", Label: "Why does HR interest you?", Type: "textarea", Required: true},
		},
	},
	{
		ID:               "content",
		Slug:             "content-management-intern",
		Title:            "Content Management Internship",
		Type:             "Unpaid Internship",
		Location:         "Remote",
		Commitment:       "Flexible",
		ShortDescription: "Manage website content, write product descriptions, and ensure consistency across platforms.",
		About:            "You will be the voice of Kridavista across our digital channels. Creating engaging content, writing clear documentation, and ensuring our messaging is consistent and compelling.",
		Responsibilities: []string{
			"Write and edit blog posts, newsletters, and social media content.",
			"Proofread website copy for clarity and accuracy.",
			"Assist in creating product documentation and guides.",
			"Collaborate with the design team on visual content.",
			"Monitor content performance and user engagement.",
		},
		Requirements: []string{
			"Excellent written communication skills.",
			"Basic understanding of digital marketing and SEO.",
			"Strong attention to detail and grammar.",
			"Creativity and ability to tell stories.",
			"Ability to meet content deadlines.",
		},
		Benefits: []string{
			"Published portfolio pieces.",
			"SEO and content strategy skills.",
			"Experience certificate upon completion.",
			"Creative freedom.",
		},
		Culture: []string{
			"Creative and expressive.",
			"Open to new ideas.",
			"Supportive feedback process.",
			"Values quality over quantity.",
		},
		FormFields: []FormField{
			{ID: "writing_exp", Label: "Writing experience", Type: "textarea", Required: true},
			{ID: "platforms", Label: "Platforms worked on", Type: "text", Required: true},
			{ID: "samples", Label: "Sample work links", Type: "textarea", Required: true},
			{ID: "interests", Label: "Content areas of interest", Type: "text", Required: true},
		},
	},
}
