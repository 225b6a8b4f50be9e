package scaffold

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/pulsar/internal/catalog"
)

// Kind identifies one artifact in the fixed per-entry set.
type Kind string

const (
	// KindContract is the interface declaring the pattern's single operation.
	KindContract Kind = "contract"
	// KindImplementation is the stub realization of the contract.
	KindImplementation Kind = "implementation"
	// KindProgram is the runnable demonstration entry point.
	KindProgram Kind = "program"
	// KindDocs is the README.
	KindDocs Kind = "docs"
	// KindProject is the .csproj build descriptor.
	KindProject Kind = "project"
)

// Kinds is the fixed artifact order. Every generated entry directory holds
// exactly one file per kind, rendered and written in this order.
var Kinds = []Kind{KindContract, KindImplementation, KindProgram, KindDocs, KindProject}

// Artifact is one rendered file, held in memory until the whole entry
// renders successfully.
type Artifact struct {
	Kind     Kind
	Filename string
	Content  string
}

// Filename returns the deterministic file name for a kind and identifier.
func Filename(kind Kind, identifier string) (string, error) {
	switch kind {
	case KindContract:
		return "I" + identifier + ".cs", nil
	case KindImplementation:
		return identifier + "Implementation.cs", nil
	case KindProgram:
		return "Program.cs", nil
	case KindDocs:
		return "README.md", nil
	case KindProject:
		return identifier + ".csproj", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// RenderAll renders every artifact for an entry into memory, in kind order.
// If any single template fails, nothing is returned: the caller must not
// write a partial artifact set.
func RenderAll(e catalog.Entry, category []string, dest Destination) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(Kinds))
	for _, kind := range Kinds {
		name, err := Filename(kind, e.Identifier)
		if err != nil {
			return nil, err
		}
		content, err := Render(kind, e, category, dest)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		artifacts = append(artifacts, Artifact{Kind: kind, Filename: name, Content: content})
	}
	return artifacts, nil
}

// Render produces the full text of one artifact kind for an entry.
func Render(kind Kind, e catalog.Entry, category []string, dest Destination) (string, error) {
	if e.Identifier == "" {
		return "", fmt.Errorf("%w: identifier", ErrMissingField)
	}
	if e.Description == "" {
		return "", fmt.Errorf("%w: description", ErrMissingField)
	}

	switch kind {
	case KindContract:
		return renderContract(e, dest), nil
	case KindImplementation:
		return renderImplementation(e, dest), nil
	case KindProgram:
		return renderProgram(e, category, dest), nil
	case KindDocs:
		return renderDocs(e, category, dest), nil
	case KindProject:
		return renderProject(dest), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func renderContract(e catalog.Entry, dest Destination) string {
	var b strings.Builder
	fmt.Fprintf(&b, "namespace %s;\n\n", dest.Namespace)
	b.WriteString("/// <summary>\n")
	fmt.Fprintf(&b, "/// %s\n", escapeCSharpComment(e.Description))
	b.WriteString("/// </summary>\n")
	fmt.Fprintf(&b, "public interface I%s\n{\n    void Execute();\n}\n", e.Identifier)
	return b.String()
}

func renderImplementation(e catalog.Entry, dest Destination) string {
	var b strings.Builder
	b.WriteString("using System;\n\n")
	fmt.Fprintf(&b, "namespace %s;\n\n", dest.Namespace)
	b.WriteString("/// <summary>\n")
	fmt.Fprintf(&b, "/// Concrete implementation of the %s pattern.\n", e.Identifier)
	fmt.Fprintf(&b, "/// %s\n", escapeCSharpComment(e.Description))
	b.WriteString("/// </summary>\n")
	fmt.Fprintf(&b, "public class %sImplementation : I%s\n{\n", e.Identifier, e.Identifier)
	b.WriteString("    public void Execute()\n    {\n")
	fmt.Fprintf(&b, "        Console.WriteLine(\"%s pattern executing...\");\n", escapeCSharpString(e.Identifier))
	b.WriteString("        // TODO: pattern-specific logic not yet implemented\n")
	b.WriteString("    }\n}\n")
	return b.String()
}

func renderProgram(e catalog.Entry, category []string, dest Destination) string {
	categoryPath := strings.Join(category, "/")

	var b strings.Builder
	b.WriteString("using System;\n\n")
	fmt.Fprintf(&b, "namespace %s;\n\n", dest.Namespace)
	b.WriteString("/// <summary>\n")
	fmt.Fprintf(&b, "/// Demonstrates the %s pattern.\n", e.Identifier)
	b.WriteString("/// </summary>\n")
	b.WriteString("public class Program\n{\n")
	b.WriteString("    public static void Main(string[] args)\n    {\n")
	fmt.Fprintf(&b, "        Console.WriteLine(\"=== %s Pattern Demo ===\");\n", escapeCSharpString(e.Identifier))
	fmt.Fprintf(&b, "        Console.WriteLine(\"Category: %s\");\n", escapeCSharpString(categoryPath))
	fmt.Fprintf(&b, "        Console.WriteLine(\"%s\");\n", escapeCSharpString(e.Description))
	b.WriteString("        Console.WriteLine();\n\n")
	fmt.Fprintf(&b, "        I%s pattern = new %sImplementation();\n", e.Identifier, e.Identifier)

	if len(e.Scenarios) == 0 {
		b.WriteString("        pattern.Execute();\n")
	} else {
		// Scenarios run in catalog order; no reordering, dedup, or filtering.
		for i, s := range e.Scenarios {
			b.WriteString("\n")
			fmt.Fprintf(&b, "        Console.WriteLine(\"--- Scenario %d: %s ---\");\n", i+1, escapeCSharpString(s.Name))
			fmt.Fprintf(&b, "        Console.WriteLine(\"%s\");\n", escapeCSharpString(s.Detail))
			b.WriteString("        pattern.Execute();\n")
			b.WriteString("        Console.WriteLine();\n")
		}
	}

	b.WriteString("\n        Console.WriteLine(\"=== Demo Complete ===\");\n")
	b.WriteString("    }\n}\n")
	return b.String()
}

func renderDocs(e catalog.Entry, category []string, dest Destination) string {
	categoryPath := strings.Join(category, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Pattern\n\n", escapeMarkdown(e.Identifier))
	b.WriteString("## Intent\n")
	fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(e.Description))
	b.WriteString("## Category\n")
	fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(categoryPath))

	if len(e.Concepts) > 0 {
		b.WriteString("## Key Concepts\n")
		for _, c := range e.Concepts {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdown(c))
		}
		b.WriteString("\n")
	}

	if len(e.Scenarios) > 0 {
		b.WriteString("## Scenarios\n")
		for i, s := range e.Scenarios {
			fmt.Fprintf(&b, "%d. **%s** — %s\n", i+1, escapeMarkdown(s.Name), escapeMarkdown(s.Detail))
		}
		b.WriteString("\n")
	}

	b.WriteString(`## Consequences

### Benefits
- **Decoupling**: separates collaborators behind a stable contract
- **Flexibility**: easy to modify and extend
- **Maintainability**: clear separation of concerns

### Drawbacks
- **Complexity**: additional structure to understand
- **Indirection**: harder to trace control flow
- **Overhead**: more moving parts than a direct call

## Best Practices
1. Keep the generated stub as a starting point; replace the placeholder with real logic
2. Add error handling before production use
3. Add logging and monitoring
4. Cover the implementation with unit tests

`)

	b.WriteString("## How to Run\n")
	fmt.Fprintf(&b, "The project's root namespace is `%s`.\n\n", escapeMarkdown(dest.Namespace))
	b.WriteString("```bash\n")
	fmt.Fprintf(&b, "cd %s/%s\n", escapeMarkdown(categoryPath), escapeMarkdown(e.Identifier))
	b.WriteString("dotnet run\n")
	b.WriteString("```\n\n")

	b.WriteString("## References\n")
	b.WriteString("- Patterns of Enterprise Application Architecture\n")
	b.WriteString("- Enterprise Integration Patterns\n")
	b.WriteString("- Cloud Design Patterns\n")
	return b.String()
}

func renderProject(dest Destination) string {
	var b strings.Builder
	b.WriteString("<Project Sdk=\"Microsoft.NET.Sdk\">\n\n")
	b.WriteString("  <PropertyGroup>\n")
	b.WriteString("    <OutputType>Exe</OutputType>\n")
	b.WriteString("    <TargetFramework>net8.0</TargetFramework>\n")
	fmt.Fprintf(&b, "    <RootNamespace>%s</RootNamespace>\n", escapeXML(dest.Namespace))
	b.WriteString("    <Nullable>enable</Nullable>\n")
	b.WriteString("  </PropertyGroup>\n\n")
	b.WriteString("</Project>\n")
	return b.String()
}
