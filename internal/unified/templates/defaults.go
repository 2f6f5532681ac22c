package templates

import "unify/internal/unified"

// Built-in templates for the stable unified categories. Deployments may
// replace or extend these with YAML files via LoadDir; the shapes are
// identical.
var Defaults = []unified.Template{
	assetManagement,
	accessControl,
	governance,
	incidentManagement,
	cryptography,
}

var assetManagement = unified.Template{
	CategoryID: "asset-management",
	Title:      "Asset Management",
	Slots: []unified.Slot{
		{Letter: "a", Title: "Asset inventory", Baseline: "Maintain a complete, current inventory of information assets.", Keywords: []string{"inventory", "asset register", "enterprise asset"}},
		{Letter: "b", Title: "Asset ownership", Baseline: "Assign an owner to every asset in the inventory.", Keywords: []string{"ownership", "owner", "accountable"}},
		{Letter: "c", Title: "Acceptable use", Baseline: "Establish rules for the acceptable use of assets.", Keywords: []string{"acceptable use", "rules for use", "handling of assets"}},
		{Letter: "d", Title: "Return of assets", Baseline: "Require return of assets on termination of employment or contract.", Keywords: []string{"return of assets", "termination", "return"}},
		{Letter: "e", Title: "Information classification", Baseline: "Classify information according to protection needs.", Keywords: []string{"classification", "classify", "sensitivity"}},
		{Letter: "f", Title: "Labelling", Baseline: "Label information in accordance with the classification scheme.", Keywords: []string{"labelling", "labeling", "label"}},
		{Letter: "g", Title: "Media handling", Baseline: "Manage removable media through their lifecycle.", Keywords: []string{"media", "removable", "disposal"}},
	},
}

var accessControl = unified.Template{
	CategoryID: "access-control",
	Title:      "Access Control",
	Slots: []unified.Slot{
		{Letter: "a", Title: "Access control policy", Baseline: "Establish and review an access control policy.", Keywords: []string{"access control policy", "policy"}},
		{Letter: "b", Title: "User provisioning", Baseline: "Provision and deprovision access through a managed process.", Keywords: []string{"provisioning", "registration", "deprovision", "joiner"}},
		{Letter: "c", Title: "Privileged access", Baseline: "Restrict and monitor privileged access rights.", Keywords: []string{"privileged", "administrator", "elevated"}},
		{Letter: "d", Title: "Authentication", Baseline: "Enforce secure authentication including multi-factor where warranted.", Keywords: []string{"authentication", "password", "multi-factor", "mfa"}},
		{Letter: "e", Title: "Access review", Baseline: "Review access rights at planned intervals.", Keywords: []string{"review", "recertification", "revalidate"}},
		{Letter: "f", Title: "Access removal", Baseline: "Remove access rights promptly on change or termination.", Keywords: []string{"removal", "revoke", "termination"}},
	},
}

// governance carries declarative group metadata: its letters render under
// named sub-sections rather than one linear list.
var governance = unified.Template{
	CategoryID: "governance",
	Title:      "Information Security Governance",
	Slots: []unified.Slot{
		{Letter: "a", Title: "Security policy", Baseline: "Define and approve an information security policy.", Keywords: []string{"policy", "policies"}},
		{Letter: "b", Title: "Risk assessment", Baseline: "Assess information security risks at planned intervals.", Keywords: []string{"risk assessment", "risk", "assess"}},
		{Letter: "c", Title: "Risk treatment", Baseline: "Select and implement risk treatment options.", Keywords: []string{"risk treatment", "treatment plan", "mitigation"}},
		{Letter: "d", Title: "Security objectives", Baseline: "Establish measurable security objectives.", Keywords: []string{"objectives", "measurable"}},
		{Letter: "e", Title: "Resources", Baseline: "Provide resources needed for the security programme.", Keywords: []string{"resources", "budget"}},
		{Letter: "f", Title: "Competence and awareness", Baseline: "Ensure competence and awareness of persons doing security-relevant work.", Keywords: []string{"awareness", "training", "competence"}},
		{Letter: "g", Title: "Documented information", Baseline: "Control documented information required by the programme.", Keywords: []string{"documented", "documentation", "records"}},
		{Letter: "h", Title: "Roles and responsibilities", Baseline: "Assign and communicate security roles and responsibilities.", Keywords: []string{"roles", "responsibilities", "accountability"}},
		{Letter: "i", Title: "Management commitment", Baseline: "Demonstrate top management commitment and leadership.", Keywords: []string{"management", "leadership", "commitment"}},
		{Letter: "j", Title: "Internal audit", Baseline: "Audit the security programme at planned intervals.", Keywords: []string{"audit", "internal audit"}},
		{Letter: "k", Title: "Management review", Baseline: "Review the security programme at planned intervals.", Keywords: []string{"management review", "review"}},
		{Letter: "l", Title: "Nonconformity and corrective action", Baseline: "React to nonconformities and take corrective action.", Keywords: []string{"nonconformity", "corrective"}},
		{Letter: "m", Title: "Continual improvement", Baseline: "Continually improve the security programme.", Keywords: []string{"improvement", "improve"}},
		{Letter: "n", Title: "Performance monitoring", Baseline: "Monitor, measure, analyse and evaluate security performance.", Keywords: []string{"monitoring", "measure", "metrics", "evaluate"}},
		{Letter: "o", Title: "Legal and regulatory", Baseline: "Identify and satisfy legal, statutory and contractual requirements.", Keywords: []string{"legal", "regulatory", "statutory", "contractual"}},
		{Letter: "p", Title: "Oversight reporting", Baseline: "Report security posture to the governing body.", Keywords: []string{"reporting", "board", "oversight"}},
	},
	Groups: []unified.Group{
		{Name: "Core Programme", From: "a", To: "g"},
		{Name: "Leadership", From: "h", To: "i"},
		{Name: "Review and Improvement", From: "j", To: "p"},
	},
}

var incidentManagement = unified.Template{
	CategoryID: "incident-management",
	Title:      "Incident Management",
	Slots: []unified.Slot{
		{Letter: "a", Title: "Incident response plan", Baseline: "Establish and maintain an incident response plan.", Keywords: []string{"incident response", "response plan", "plan"}},
		{Letter: "b", Title: "Reporting", Baseline: "Report security events through defined channels without delay.", Keywords: []string{"report", "notification", "notify"}},
		{Letter: "c", Title: "Assessment and triage", Baseline: "Assess events and decide whether they are incidents.", Keywords: []string{"assess", "triage", "classify"}},
		{Letter: "d", Title: "Response and containment", Baseline: "Respond to incidents according to documented procedures.", Keywords: []string{"respond", "containment", "eradication"}},
		{Letter: "e", Title: "Lessons learned", Baseline: "Use incident knowledge to reduce likelihood and impact of future incidents.", Keywords: []string{"lessons", "post-incident", "knowledge"}},
	},
}

var cryptography = unified.Template{
	CategoryID: "cryptography",
	Title:      "Cryptography",
	Slots: []unified.Slot{
		{Letter: "a", Title: "Cryptography policy", Baseline: "Define rules for the effective use of cryptography.", Keywords: []string{"cryptograph", "encryption policy"}},
		{Letter: "b", Title: "Encryption at rest", Baseline: "Encrypt sensitive data at rest.", Keywords: []string{"at rest", "encrypt data", "stored"}},
		{Letter: "c", Title: "Encryption in transit", Baseline: "Encrypt sensitive data in transit.", Keywords: []string{"in transit", "tls", "transmission"}},
		{Letter: "d", Title: "Key management", Baseline: "Manage cryptographic keys through their whole lifecycle.", Keywords: []string{"key management", "keys"}},
	},
}
