package ai

import "fmt"

// maxTextLength caps how much book text goes into the prompt. The cut is a hard
// character count, not word or sentence aware.
const maxTextLength = 20000

// buildAnalysisPrompt formats the fixed analysis instruction around the
// (truncated) book text. The template is the single authoritative source of the
// JSON contract that decodeAnalysis expects the model to honor.
func buildAnalysisPrompt(title, text string) string {
	if runes := []rune(text); len(runes) > maxTextLength {
		text = string(runes[:maxTextLength])
	}
	if title == "" {
		title = "unknown"
	}
	return fmt.Sprintf(analysisPromptTemplate, title, text)
}

const analysisPromptTemplate = `Analyze the following text from the book "%s":

%s

Complete the following two tasks:

TASK 1: Extract all main single characters from this novel text, skip any unknown characters (A gentleman, A Priest, etc..), skip the book introduction and other non-novel text. For each character provide:
1. Full name
2. Any aliases or nicknames
3. Brief description (1-2 sentences)
4. Importance level (main, secondary, minor)

TASK 2: Identify interactions between the characters. Avoid any duplicate interactions, for example if character A and character B interact, do not include character B and character A. For each pair of characters that interact, provide:
1. The names of the two characters
2. A brief description of their relationship (1-2 sentences)
3. The nature of their interaction (allies, enemies, family, romantic, etc.)
4. A significance score from 1-10 (10 being the most significant relationship in the book)

Format the response as a JSON object with two properties: "characters" and "interactions".
Example format:
{
  "characters": [
    {
      "name": "Character Name",
      "aliases": ["nickname1", "nickname2"],
      "description": "Brief character description",
      "importance": "main"
    }
  ],
  "interactions": [
    {
      "character1": "Character Name 1",
      "character2": "Character Name 2",
      "relationship": "Brief description of their relationship",
      "nature": "allies",
      "significance": 8
    }
  ]
}

Focus on identifying meaningful relationships between the main and secondary characters.
Only return the JSON object, nothing else. Do not use markdown code blocks. Do not add any formatting.`
