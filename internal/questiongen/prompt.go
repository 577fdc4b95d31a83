package questiongen

const systemPrompt = `You are a friendly Vietnamese teacher of English.
Your students are Vietnamese learners preparing for the TOEIC exam and you help them raise their score.`

const grammarPrompt = `Write a TOEIC mock test made of 10 grammar questions.

For every question:
1. Write a short business or workplace text of 1-3 sentences containing one blank (__________) where a grammatical element belongs.
2. Give exactly 4 answer choices for the blank.
3. Exactly one choice is correct; place it at a random position among the choices.
4. Explain in Vietnamese why the correct choice is right and why each of the others is wrong.

Cover a mix of grammar points that TOEIC tests often use: verb tenses and forms, subject-verb agreement, modal verbs, prepositions, articles, pronouns, conjunctions, conditionals, passive voice, reported speech, relative clauses, gerunds and infinitives.

Set the questions in professional situations such as office communication, meetings, training, work procedures, customer service, business travel and company policy.

Reply with JSON only, wrapped in <json></json> tags, using exactly this structure:
<json>
{
    "GRAMMAR_DATA": [
        {
            "question": "All employees are required __________ the safety training before using the new equipment.",
            "choices": ["complete", "to complete", "completing", "completed"],
            "correct_answer": "to complete",
            "explanation": "Cấu trúc 'be required to + động từ nguyên mẫu' nên 'to complete' là đáp án đúng. 'Complete' thiếu 'to'. 'Completing' là V-ing, không đi sau 'be required'. 'Completed' là quá khứ phân từ, không phù hợp về nghĩa và cấu trúc."
        }
    ]
}
</json>`

const readingPrompt = `Write a TOEIC mock test made of 3 reading comprehension passages.

For every passage:
1. Write a realistic business or workplace text of 100-200 words, like the ones on the real TOEIC exam.
2. Write 3 multiple-choice questions about the passage, each with exactly 4 choices.
3. Each question has exactly one correct choice, placed at a random position.
4. Explain in Vietnamese why the correct choice is right and why the others are wrong.
5. Mix question types: main idea, detail, inference, vocabulary and purpose.
6. Format the passage with \n line breaks only and keep every string valid JSON.

Choose varied text types such as emails, memos, business articles, product descriptions, job advertisements, company announcements, travel information and instructions.

Reply with JSON only, wrapped in <json></json> tags, using exactly this structure:
<json>
{
    "READING_DATA": [
        {
            "passage": "To: All staff\nFrom: Facilities Department\n\nThe elevators in the east wing will be closed for maintenance on Saturday, March 8, from 7:00 A.M. to 3:00 P.M. Staff working that day should use the west wing elevators. The cafeteria will open one hour later than usual.",
            "questions": [
                {
                    "question": "What is the purpose of the memo?",
                    "choices": ["To announce a schedule change", "To introduce new staff", "To explain a closure", "To request volunteers"],
                    "correct_answer": "To explain a closure",
                    "explanation": "Bản ghi nhớ thông báo thang máy khu phía đông sẽ đóng cửa để bảo trì. Các lựa chọn còn lại không được nhắc đến là mục đích chính."
                }
            ]
        }
    ]
}
</json>`
