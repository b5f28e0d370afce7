package catalog

// Default returns the built-in catalog compiled into the binary. It mirrors
// the published index so the installer works without a network round trip
// for catalog metadata; `promptkit catalog update` replaces it with the
// remote index.
func Default() *Catalog {
	return &Catalog{
		Version: "1.0.0",
		Items: []Item{
			// Agents.
			{ID: "code-reviewer", Kind: KindAgent, Path: "agents/code-reviewer.md",
				Description: "Reviews diffs for correctness, style, and security issues",
				Tags:        []string{"quality", "review"}},
			{ID: "debugger", Kind: KindAgent, Path: "agents/debugger.md",
				Description: "Root-causes failures from stack traces and logs",
				Tags:        []string{"quality", "debugging"}},
			{ID: "typescript-pro", Kind: KindAgent, Path: "agents/typescript-pro.md",
				Description: "TypeScript language and tooling specialist",
				Tags:        []string{"frontend", "typescript"}},
			{ID: "react-expert", Kind: KindAgent, Path: "agents/react-expert.md",
				Description: "React component architecture and hooks guidance",
				Tags:        []string{"frontend", "react"}},
			{ID: "css-stylist", Kind: KindAgent, Path: "agents/css-stylist.md",
				Description: "Layout, responsive design, and theming",
				Tags:        []string{"frontend", "css"}},
			{ID: "api-designer", Kind: KindAgent, Path: "agents/api-designer.md",
				Description: "REST and RPC interface design",
				Tags:        []string{"backend", "api"}},
			{ID: "database-architect", Kind: KindAgent, Path: "agents/database-architect.md",
				Description: "Schema design, migrations, and query tuning",
				Tags:        []string{"backend", "database"}},
			{ID: "security-auditor", Kind: KindAgent, Path: "agents/security-auditor.md",
				Description: "Finds injection, authz, and secret-handling flaws",
				Tags:        []string{"backend", "security"}},
			{ID: "product-manager", Kind: KindAgent, Path: "agents/product-manager.md",
				Description: "Drives the product scaffolding conversation",
				Tags:        []string{"product", "planning"}},
			{ID: "ux-researcher", Kind: KindAgent, Path: "agents/ux-researcher.md",
				Description: "User flows, personas, and usability heuristics",
				Tags:        []string{"product", "ux"}},
			{ID: "tech-writer", Kind: KindAgent, Path: "agents/tech-writer.md",
				Description: "READMEs, changelogs, and user-facing docs",
				Tags:        []string{"product", "docs"}},

			// Commands.
			{ID: "verify", Kind: KindCommand, Path: "commands/verify.md",
				Description: "Run the project's checks and summarize failures",
				Tags:        []string{"quality"}},
			{ID: "scope", Kind: KindCommand, Path: "commands/scope.md",
				Description: "Break a feature request into scoped tasks",
				Tags:        []string{"product", "planning"}},
			{ID: "ship", Kind: KindCommand, Path: "commands/ship.md",
				Description: "Prepare a change for release",
				Tags:        []string{"workflow"}},
			{ID: "handoff", Kind: KindCommand, Path: "commands/handoff.md",
				Description: "Write a session handoff summary",
				Tags:        []string{"workflow"}},

			// Themes.
			{ID: "minimal-light", Kind: KindTheme, Path: "templates/themes/minimal-light.css",
				Description: "Light documentation theme", Tags: []string{"theme"}},
			{ID: "minimal-dark", Kind: KindTheme, Path: "templates/themes/minimal-dark.css",
				Description: "Dark documentation theme", Tags: []string{"theme"}},
			{ID: "terminal", Kind: KindTheme, Path: "templates/themes/terminal.css",
				Description: "Monospace terminal-style theme", Tags: []string{"theme"}},
		},
		Bundles: []Bundle{
			{Name: "starter",
				Description: "Core review, debugging, and verification set",
				Items:       []string{"code-reviewer", "debugger", "typescript-pro", "verify"}},
			{Name: "frontend",
				Description: "Web UI development set",
				Items:       []string{"typescript-pro", "react-expert", "css-stylist", "verify"}},
			{Name: "backend",
				Description: "Service and data layer set",
				Items:       []string{"api-designer", "database-architect", "security-auditor", "verify"}},
			{Name: "product",
				Description: "Product scaffolding conversation set",
				Items:       []string{"product-manager", "ux-researcher", "tech-writer", "scope", "handoff"}},
			{Name: "full",
				Description: "Everything in the catalog, themes included",
				Items: []string{
					"code-reviewer", "debugger", "typescript-pro", "react-expert",
					"css-stylist", "api-designer", "database-architect", "security-auditor",
					"product-manager", "ux-researcher", "tech-writer",
					"verify", "scope", "ship", "handoff",
					"minimal-light", "minimal-dark", "terminal",
				}},
		},
	}
}
