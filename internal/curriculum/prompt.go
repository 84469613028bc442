package curriculum

import (
	"fmt"
	"strings"

	"github.com/nvminh/chronos/internal/content"
)

const textbookPrompt = `Generate a complete JLPT N3 textbook curriculum for a Vietnamese learner, structured into 10 distinct chapters. Each chapter should have a thematic Vietnamese title. Define dependencies for chapters, e.g., chapter 2 depends on chapter 1.

For each chapter, provide:
1. chapter: The chapter number (1-10).
2. title: A thematic title in Vietnamese (e.g., "Giao tiếp tại Công ty," "Kế hoạch Du lịch").
3. vocabulary: An array of 8-10 N3 vocabulary words related to the theme. For each word, include: id (the word), word, furigana, meaning_vi, example_jp (with furigana like [漢字]{かんじ}), and example_en.
4. grammar: An array of 3-4 N3 grammar points. For each point, include: id (the grammar structure), grammar, meaning_vi, formation, example_jp (with furigana like [漢字]{かんじ}), and example_en.
5. kanji: An array of 3-5 N3 kanji related to the theme. For each kanji, include: id (the character), kanji, on_yomi, kun_yomi, meaning_vi, stroke_count, radical, mnemonic_vi, and examples.
6. dependencies: An array of chapter numbers this chapter depends on. Chapter 1 should have an empty array [].

Return the entire textbook as a single JSON array of chapter objects.`

// buildQuizPrompt constructs the quiz generation prompt for one chapter.
func buildQuizPrompt(chapter content.Chapter) string {
	vocab := make([]string, 0, len(chapter.Vocabulary))
	for _, v := range chapter.Vocabulary {
		vocab = append(vocab, fmt.Sprintf("%s (%s)", v.Word, v.MeaningVI))
	}
	grammar := make([]string, 0, len(chapter.Grammar))
	for _, g := range chapter.Grammar {
		grammar = append(grammar, fmt.Sprintf("%s (%s)", g.Grammar, g.MeaningVI))
	}

	var b strings.Builder
	b.WriteString("Based on the content of this JLPT N3 chapter for a Vietnamese learner, create a quiz with 8 multiple-choice questions (4 for vocabulary, 4 for grammar).\n\n")
	fmt.Fprintf(&b, "Chapter Title: %s\n", chapter.Title)
	fmt.Fprintf(&b, "Vocabulary: %s\n", strings.Join(vocab, ", "))
	fmt.Fprintf(&b, "Grammar: %s\n\n", strings.Join(grammar, ", "))
	b.WriteString(`Instructions:
- Vocabulary questions: ask for the meaning of a Japanese word or the word for a Vietnamese meaning. Questions should be in Vietnamese.
- Grammar questions: create fill-in-the-blank style questions in Japanese (use "＿＿＿"). Options should test the correct usage of the grammar points.
- For ALL questions, provide a brief, helpful explanation in Vietnamese for why the correct answer is correct.
- For each question, set relatedItemId to the id of the vocabulary or grammar item it tests.

Return the result as a JSON array of question objects.`)

	return b.String()
}

// buildAnalysisPrompt constructs the post-quiz analysis prompt from the
// learner's wrong answers.
func buildAnalysisPrompt(wrong []content.WrongAnswer) string {
	var b strings.Builder
	b.WriteString("You are an expert Japanese tutor analyzing a Vietnamese student's quiz results for JLPT N3. Here are the questions they answered incorrectly:\n")
	for _, w := range wrong {
		fmt.Fprintf(&b, "- Question: %q\n  - Their Answer: %q\n  - Correct Answer: %q\n", w.Question, w.UserAnswer, w.CorrectAnswer)
	}
	b.WriteString(`
Based on these mistakes, please provide a concise and encouraging analysis in Vietnamese.
1. Identify the main patterns or types of mistakes (e.g., confusion between similar grammar points, misunderstanding vocabulary nuances).
2. Give a brief, constructive feedback summary.
3. Suggest 2-3 specific topics or concepts they should review from this chapter.
4. End with a motivational sentence.

Keep the entire response under 100 words. Format it using Markdown. For example:
**Phân tích Synapse:**
*   **Điểm yếu chính:** Có vẻ bạn còn hơi nhầm lẫn giữa...
*   **Góp ý:** Hãy chú ý hơn đến...
*   **Đề xuất ôn tập:** 「Grammar A」, 「Vocabulary B」
Cố gắng lên, bạn sắp làm được rồi!`)

	return b.String()
}
