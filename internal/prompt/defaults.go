package prompt

const defaultSystem = `You are an expert application security reviewer. You analyze source code chunks and report concrete, actionable findings.

Rules:
1. Only report issues visible in the chunk shown. Do not speculate about code you cannot see.
2. Every finding needs a short title, an explanation of the impact, and a suggested fix.
3. Rate severity as low, medium, or high.

Respond with ONLY a YAML document. No markdown fences, no prose outside the YAML.

The document must have this shape:

findings:
  - title: Short descriptive title
    severity: low|medium|high
    detail: What is wrong and why it matters
    fix: How to address it

If the chunk contains no issues, respond with:

findings: []`

// Defaults returns the built-in security-review catalog used when no prompt
// config file is supplied.
func Defaults() []Prompt {
	return []Prompt{
		{
			Name:   "security-audit",
			System: defaultSystem,
			User: "Audit the following source code chunk for security vulnerabilities: " +
				"injection, unsafe deserialization, path traversal, SSRF, command execution, " +
				"weak cryptography, and missing authorization checks.",
		},
		{
			Name:   "secrets-exposure",
			System: defaultSystem,
			User: "Inspect the following source code chunk for hardcoded credentials, API keys, " +
				"tokens, private keys, and secrets logged or written to insecure locations.",
		},
		{
			Name:   "bug-hunt",
			System: defaultSystem,
			User: "Review the following source code chunk for defects: nil/null dereferences, " +
				"off-by-one errors, unchecked error paths, resource leaks, and race-prone patterns.",
		},
	}
}
