// Package prompt assembles system and user prompts for the code and
// document generation paths. Assembly is deterministic string
// concatenation over fixed template tables; there is no I/O here.
package prompt

import (
	"fmt"

	"github.com/agrimind/agrichat/internal/classify"
)

// ComposeCode builds the system and user prompts for a code request.
// The system prompt is the language preamble plus the reasoning-mode
// fragment; the user prompt embeds the original query and the detected
// language name.
func ComposeCode(query string, lang classify.Language, deepReasoning, followUp bool) (system, user string) {
	instructions, ok := languageInstructions[lang]
	if !ok {
		instructions = defaultCodeInstructions
	}

	structure := standardReasoningStructure
	if deepReasoning {
		structure = deepReasoningStructure
	}

	system = instructions + "\n" + structure
	if followUp {
		system += followUpCodeAddendum
	}

	user = fmt.Sprintf("Generate %s code for: %s", lang, query)
	return system, user
}

// ComposeDocument builds the system and user prompts for a document
// request, keyed by detected document type and the formatting level.
func ComposeDocument(query string, docType classify.DocumentType, deepFormatting, followUp bool) (system, user string) {
	instructions, ok := documentInstructions[docType]
	if !ok {
		instructions = genericDocumentInstructions
	}

	if deepFormatting {
		system = fmt.Sprintf(`%s

When creating a %s:
- Begin with a properly formatted document title/header
- Use professional-level organization and structure
- Include all standard sections expected in this document type
- Apply proper spacing, margins, and formatting
- Use appropriate business language and tone
- Provide complete, ready-to-use content
- Format dates, numbers, and contact information consistently

%s

Your output should be complete, properly formatted in Markdown, and ready for professional use with minimal editing needed.`,
			enhancedDocumentPreamble, docType.Name(), instructions)
	} else {
		system = fmt.Sprintf(`%s

For this %s:
- Use clear, appropriate structure
- Include standard sections for this document type
- Use professional language and tone
- Provide organized, well-formatted content

%s

Format your response clearly using Markdown for structure.`,
			standardDocumentPreamble, docType.Name(), instructions)
	}

	if followUp {
		system += followUpDocumentAddendum
	}

	user = fmt.Sprintf("Create a professional %s based on this request: %s", docType.Name(), query)
	return system, user
}
