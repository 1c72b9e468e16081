package careertest

import "fmt"

// Scale is one of the five psychometric dimensions measured by the test.
type Scale int

const (
	Inclination Scale = iota
	Aptitude
	EmotionalStability
	WorkConditions
	Motivation
)

const (
	// QuestionCount is the fixed length of a complete answer sheet.
	QuestionCount = 50
	// ScaleSize is the number of consecutive questions in every scale block.
	ScaleSize = 10

	scaleCount = QuestionCount / ScaleSize
)

var scaleNames = [scaleCount]string{
	Inclination:        "inclination",
	Aptitude:           "aptitude",
	EmotionalStability: "emotional_stability",
	WorkConditions:     "work_conditions",
	Motivation:         "motivation",
}

func (s Scale) String() string {
	if s < 0 || int(s) >= scaleCount {
		return fmt.Sprintf("scale(%d)", int(s))
	}
	return scaleNames[s]
}

// Scales returns all scales in block order.
func Scales() []Scale {
	return []Scale{Inclination, Aptitude, EmotionalStability, WorkConditions, Motivation}
}

// Question is a single Likert statement. Number is 1-based.
type Question struct {
	Number int
	Text   string
	Scale  Scale
}

// LikertOptions are the answer labels shown for values 1..5.
var LikertOptions = [5]string{
	"Совсем не про меня",
	"Скорее нет",
	"Иногда",
	"Скорее да",
	"Точно про меня",
}

// Inside the inclination block question i and i+5 feed the same category.
var questionTexts = [QuestionCount]string{
	// Inclination.
	"Мне нравится рисовать, сочинять музыку или придумывать истории",
	"Мне интересно ухаживать за растениями или животными",
	"Мне нравится разбираться в таблицах, схемах и цифрах",
	"Мне интересно чинить или собирать технику своими руками",
	"Мне нравится помогать друзьям решать их проблемы",
	"Я часто придумываю необычные идеи для оформления или творчества",
	"Я люблю проводить время на природе и узнавать о ней новое",
	"Мне нравится искать и систематизировать информацию",
	"Мне интересно, как устроены механизмы и приборы",
	"Мне легко знакомиться и общаться с новыми людьми",

	// Aptitude.
	"Я быстро запоминаю новую информацию",
	"Я умею объяснять сложные вещи простыми словами",
	"Мне легко даются точные науки",
	"Я хорошо работаю руками и аккуратно выполняю мелкие операции",
	"Я замечаю детали, которые другие пропускают",
	"Я умею планировать своё время",
	"Мне легко выступать перед аудиторией",
	"Я быстро осваиваю новые программы и приложения",
	"Я могу долго концентрироваться на одной задаче",
	"Я умею находить общий язык с разными людьми",

	// Emotional stability.
	"Я сохраняю спокойствие, когда что-то идёт не по плану",
	"Критика не выбивает меня из колеи надолго",
	"Я могу работать в условиях спешки",
	"Я быстро восстанавливаюсь после неудач",
	"Мне удаётся справляться с волнением перед важным событием",
	"Я не теряюсь, когда нужно быстро принять решение",
	"Конфликты не сильно портят мне настроение",
	"Я могу переключиться на другое дело, если устал",
	"Я спокойно отношусь к ошибкам и учусь на них",
	"Я редко срываюсь на окружающих, даже когда устал",

	// Work conditions.
	"Мне комфортно работать в команде",
	"Я готов работать по выходным, если это нужно",
	"Мне нравится работать на свежем воздухе",
	"Я могу работать в шумном помещении",
	"Мне подходит работа с чётким графиком",
	"Я готов к работе, связанной с разъездами",
	"Мне нравится работа, где много движения",
	"Я могу работать удалённо и сам организовывать день",
	"Мне важно, чтобы рабочее место было рядом с домом",
	"Я готов совмещать работу с учёбой",

	// Motivation.
	"Мне важно зарабатывать собственные деньги",
	"Я хочу получить опыт, который пригодится в будущей профессии",
	"Мне важно, чтобы работа приносила пользу людям",
	"Я хочу научиться чему-то новому на работе",
	"Мне важно признание моих результатов",
	"Я хочу найти друзей и единомышленников на работе",
	"Мне интересно попробовать себя в разных сферах",
	"Я хочу стать более самостоятельным",
	"Мне важно развиваться и расти по карьерной лестнице",
	"Я готов прикладывать усилия ради долгосрочной цели",
}

var questions = func() [QuestionCount]Question {
	var qs [QuestionCount]Question
	for i, text := range questionTexts {
		qs[i] = Question{
			Number: i + 1,
			Text:   text,
			Scale:  Scale(i / ScaleSize),
		}
	}
	return qs
}()

// Questions returns the fixed question list in presentation order.
func Questions() []Question {
	out := make([]Question, QuestionCount)
	copy(out, questions[:])
	return out
}

// QuestionAt returns the question at a zero-based position.
func QuestionAt(pos int) (Question, bool) {
	if pos < 0 || pos >= QuestionCount {
		return Question{}, false
	}
	return questions[pos], true
}
