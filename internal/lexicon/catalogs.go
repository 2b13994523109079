package lexicon

func defaultTools() []Tool {
	return []Tool{
		{Name: "HubSpot", Patterns: []string{"hubspot"}},
		{Name: "Salesforce", Patterns: []string{"salesforce", "sfdc"}},
		{Name: "Marketo", Patterns: []string{"marketo"}},
		{Name: "Pardot", Patterns: []string{"pardot"}},
		{Name: "Google Analytics", Patterns: []string{"google analytics", "ga4"}},
		{Name: "Google Ads", Patterns: []string{"google ads", "adwords"}},
		{Name: "Meta Ads", Patterns: []string{"meta ads", "facebook ads"}},
		{Name: "LinkedIn Ads", Patterns: []string{"linkedin ads", "linkedin campaign manager"}},
		{Name: "SQL", Patterns: []string{"sql"}},
		{Name: "Python", Patterns: []string{"python"}},
		{Name: "Tableau", Patterns: []string{"tableau"}},
		{Name: "Looker", Patterns: []string{"looker"}},
		{Name: "Power BI", Patterns: []string{"power bi", "powerbi"}},
		{Name: "Excel", Patterns: []string{"excel", "google sheets"}},
		{Name: "Snowflake", Patterns: []string{"snowflake"}},
		{Name: "dbt", Patterns: []string{"dbt"}},
		{Name: "Segment", Patterns: []string{"segment.io", "twilio segment"}},
		{Name: "Amplitude", Patterns: []string{"amplitude"}},
		{Name: "Mixpanel", Patterns: []string{"mixpanel"}},
		{Name: "Mailchimp", Patterns: []string{"mailchimp"}},
		{Name: "Klaviyo", Patterns: []string{"klaviyo"}},
		{Name: "Braze", Patterns: []string{"braze"}},
		{Name: "Iterable", Patterns: []string{"iterable"}},
		{Name: "Intercom", Patterns: []string{"intercom"}},
		{Name: "Zendesk", Patterns: []string{"zendesk"}},
		{Name: "Outreach", Patterns: []string{"outreach.io"}},
		{Name: "Salesloft", Patterns: []string{"salesloft"}},
		{Name: "Gong", Patterns: []string{"gong.io"}},
		{Name: "6sense", Patterns: []string{"6sense"}},
		{Name: "Demandbase", Patterns: []string{"demandbase"}},
		{Name: "Clearbit", Patterns: []string{"clearbit"}},
		{Name: "SEMrush", Patterns: []string{"semrush"}},
		{Name: "Ahrefs", Patterns: []string{"ahrefs"}},
		{Name: "Webflow", Patterns: []string{"webflow"}},
		{Name: "WordPress", Patterns: []string{"wordpress"}},
		{Name: "Zapier", Patterns: []string{"zapier"}},
		{Name: "Jira", Patterns: []string{"jira"}},
		{Name: "Asana", Patterns: []string{"asana"}},
		{Name: "Notion", Patterns: []string{"notion"}},
		{Name: "Airtable", Patterns: []string{"airtable"}},
		{Name: "Figma", Patterns: []string{"figma"}},
	}
}

func defaultSkills() []SkillPattern {
	return []SkillPattern{
		{Name: "demand generation", Patterns: []string{"demand generation", "demand gen"}},
		{Name: "lifecycle marketing", Patterns: []string{"lifecycle marketing", "lifecycle campaigns"}},
		{Name: "account-based marketing", Patterns: []string{"account-based marketing", "account based marketing", "abm"}},
		{Name: "content marketing", Patterns: []string{"content marketing", "content strategy"}},
		{Name: "SEO", Patterns: []string{"seo", "search engine optimization", "organic search"}},
		{Name: "paid media", Patterns: []string{"paid media", "paid acquisition", "paid social", "paid search"}},
		{Name: "email marketing", Patterns: []string{"email marketing", "email campaigns"}},
		{Name: "marketing automation", Patterns: []string{"marketing automation"}},
		{Name: "product marketing", Patterns: []string{"product marketing"}},
		{Name: "growth strategy", Patterns: []string{"growth strategy", "growth marketing"}},
		{Name: "go-to-market", Patterns: []string{"go-to-market", "go to market", "gtm"}},
		{Name: "positioning", Patterns: []string{"positioning", "messaging"}},
		{Name: "brand", Patterns: []string{"brand strategy", "brand marketing", "branding"}},
		{Name: "revenue operations", Patterns: []string{"revenue operations", "revops", "marketing operations"}},
		{Name: "analytics", Patterns: []string{"analytics", "data analysis", "reporting"}},
		{Name: "attribution", Patterns: []string{"attribution", "attribution modeling"}},
		{Name: "conversion rate optimization", Patterns: []string{"conversion rate optimization", "cro"}},
		{Name: "experimentation", Patterns: []string{"a/b testing", "ab testing", "experimentation"}},
		{Name: "pipeline generation", Patterns: []string{"pipeline generation", "pipeline growth"}},
		{Name: "sales enablement", Patterns: []string{"sales enablement"}},
		{Name: "customer retention", Patterns: []string{"retention", "churn reduction"}},
		{Name: "segmentation", Patterns: []string{"segmentation", "audience segmentation"}},
		{Name: "forecasting", Patterns: []string{"forecasting"}},
		{Name: "budget management", Patterns: []string{"budget management", "budget ownership"}},
		{Name: "team leadership", Patterns: []string{"team leadership", "people management", "team building"}},
		{Name: "partnerships", Patterns: []string{"partnerships", "partner marketing"}},
		{Name: "pricing", Patterns: []string{"pricing strategy", "pricing"}},
		{Name: "events", Patterns: []string{"event marketing", "field marketing", "webinars"}},
	}
}

func defaultStageScores() []StageKeyword {
	return []StageKeyword{
		{Phrase: "publicly traded", Score: 20},
		{Phrase: "public company", Score: 20},
		{Phrase: "fortune 500", Score: 20},
		{Phrase: "series d", Score: 18},
		{Phrase: "series c", Score: 17},
		{Phrase: "late-stage", Score: 16},
		{Phrase: "late stage", Score: 16},
		{Phrase: "profitable", Score: 16},
		{Phrase: "series b", Score: 13},
		{Phrase: "growth-stage", Score: 13},
		{Phrase: "growth stage", Score: 13},
		{Phrase: "well-funded", Score: 12},
		{Phrase: "series a", Score: 10},
		{Phrase: "bootstrapped", Score: 9},
		{Phrase: "startup", Score: 8},
	}
}

func defaultDomainSignals() []string {
	return []string{
		"b2b", "saas", "demand generation", "pipeline", "marketing automation",
		"revenue", "lifecycle", "account-based", "product-led", "growth",
		"self-serve", "enterprise sales", "inbound", "outbound",
	}
}

func defaultRiskSignals() []RiskSignal {
	return []RiskSignal{
		{Phrase: "wear many hats", Weight: 3, Reason: "Role scope is undefined (wear many hats)"},
		{Phrase: "scrappy", Weight: 2, Reason: "Scrappy culture usually means under-resourced"},
		{Phrase: "rockstar", Weight: 3, Reason: "Rockstar language signals unrealistic expectations"},
		{Phrase: "ninja", Weight: 3, Reason: "Ninja language signals unrealistic expectations"},
		{Phrase: "work hard play hard", Weight: 3, Reason: "Work hard play hard culture flag"},
		{Phrase: "like a family", Weight: 2, Reason: "Family framing blurs work boundaries"},
		{Phrase: "do more with less", Weight: 3, Reason: "Explicit under-resourcing (do more with less)"},
		{Phrase: "hustle", Weight: 2, Reason: "Hustle culture flag"},
		{Phrase: "high-pressure", Weight: 2, Reason: "Self-described high-pressure environment"},
		{Phrase: "unlimited pto", Weight: 1, Reason: "Unlimited PTO often means untracked PTO"},
		{Phrase: "fast-paced", Weight: 1, Reason: "Fast-paced environment flag"},
	}
}

func defaultBenefitKeywords() []string {
	return []string{
		"401k", "401(k)", "health insurance", "medical", "dental", "vision",
		"parental leave", "paid time off", "pto", "equity", "stock options",
		"remote", "flexible", "sabbatical", "hsa", "life insurance",
	}
}

func defaultSeniorTitles() []string {
	return []string{
		"director", "senior director", "head of", "vp", "vice president",
		"svp", "evp", "chief", "cmo", "principal",
	}
}

func defaultStrategicSignals() []string {
	return []string{
		"strategy", "strategic", "roadmap", "budget", "p&l", "executive",
		"board", "cross-functional", "vision", "go-to-market", "positioning",
		"org design",
	}
}

func defaultTeamSignals() []string {
	return []string{
		"direct reports", "manage a team", "lead a team", "build a team",
		"build and lead", "people management", "grow the team", "hiring",
	}
}

func defaultMetricKeywords() []MetricKeyword {
	return []MetricKeyword{
		{Keyword: "arr", Type: "revenue"},
		{Keyword: "mrr", Type: "revenue"},
		{Keyword: "revenue", Type: "revenue"},
		{Keyword: "sales", Type: "revenue"},
		{Keyword: "pipeline", Type: "pipeline"},
		{Keyword: "leads", Type: "leads"},
		{Keyword: "mql", Type: "leads"},
		{Keyword: "signups", Type: "leads"},
		{Keyword: "retention", Type: "retention"},
		{Keyword: "churn", Type: "retention"},
		{Keyword: "traffic", Type: "traffic"},
		{Keyword: "visitors", Type: "traffic"},
		{Keyword: "conversion", Type: "conversion"},
		{Keyword: "headcount", Type: "headcount"},
		{Keyword: "team of", Type: "headcount"},
		{Keyword: "budget", Type: "budget"},
		{Keyword: "spend", Type: "budget"},
		{Keyword: "cost", Type: "budget"},
		{Keyword: "cac", Type: "budget"},
	}
}
