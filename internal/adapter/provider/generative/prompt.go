package generative

import "fmt"

// stopToken delimits turns in the prompt templates. It doubles as the stop
// sequence sent with every request, so the endpoint halts exactly after the
// model's turn instead of rambling into a new one.
const stopToken = "###"

var stopSequences = []string{stopToken}

// entryPrompt builds the fixed-template prompt for generating a full
// dictionary entry. The example schema is embedded verbatim so a
// low-temperature model tends to reproduce its shape.
func entryPrompt(word string) string {
	return fmt.Sprintf(`You are an English-Vietnamese dictionary editor.

Produce a dictionary entry for the word %q as a single JSON object matching this exact schema:

{
  "word": "example",
  "pronunciations": [
    {"accent": "US", "ipa": "/ɪɡˈzæmpəl/"},
    {"accent": "UK", "ipa": "/ɪɡˈzɑːmpəl/"}
  ],
  "definitions": [
    {
      "pos": "noun",
      "definition_en": "a thing characteristic of its kind",
      "definition_vi": "ví dụ",
      "level": "beginner",
      "examples": [
        {"en": "This painting is a perfect example of her early work.", "vi": "Bức tranh này là một ví dụ hoàn hảo về thời kỳ đầu của bà ấy."}
      ]
    }
  ],
  "word_forms": {"plural": "examples"},
  "synonyms": ["instance", "sample"]
}

Rules:
- definition_vi is the Vietnamese translation of the definition
- level is one of: beginner, intermediate, advanced
- include 1-3 definitions with 1-2 examples each
- output ONLY the JSON object, nothing else

%s
Entry for %q:
`, word, stopToken, word)
}

// translatePrompt builds the free-text translation prompt. The completion
// is used as-is (trimmed), so the template asks for the translation alone.
func translatePrompt(text, sourceLang, targetLang string) string {
	return fmt.Sprintf(`Translate the following %s text into %s. Output only the translation.

%s
%s
%s
Translation:
`, sourceLang, targetLang, stopToken, text, stopToken)
}

// languageNames resolves ISO 639-1 codes to the names used in translation
// prompts. Unknown codes fall back to the code itself.
var languageNames = map[string]string{
	"en": "English",
	"vi": "Vietnamese",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ru": "Russian",
	"th": "Thai",
	"id": "Indonesian",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
