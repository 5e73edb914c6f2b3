package bot

// Command labels. The slash commands are matched exactly except for
// cmdRemove, which is a prefix whose remainder is the argument.
const (
	labelFAQ    = "🔎 Часто задаваемые вопросы"
	labelAsk    = "❗ Задать вопрос"
	labelCancel = "❌ Отменить"

	cmdStart  = "/start"
	cmdList   = "/ls"
	cmdRemove = "/rm"
)

// maxQuestionLen bounds the accepted question text, in bytes.
const maxQuestionLen = 1024

const (
	textMaintenance = "❌ Извините, бот временно недоступен\n\n" +
		"Проводятся технические работы. Пожалуйста, ожидайте!"

	textPrivateOnly = "❌ Извините, я могу работать только в личных сообщениях"
	textTextOnly    = "❌ Извините, я понимаю только текст"

	textQuestionCanceled = "✅ Создание вопроса отменено"
	textNeedUsername     = "❌ Извините, для этой функции вам нужно " +
		"создать имя пользователя в настройках Telegram"
	textQuestionTooLong = "❌ Извините, ваш вопрос слишком большой"
	textQuestionSaved   = "✅ Ваш вопрос сохранён\n\n" +
		"Надеюсь вам ответят как можно быстрее!"
	textNewQuestion = "ℹ Появился новый вопрос"

	textFAQPrompt    = "❓Что вас интересует"
	textAlreadyAsked = "❌ Извините, вы уже задали вопрос"
	textAskPrompt    = "🖊 Задайте ваш вопрос"
	textGreeting     = "👋 Добро пожаловать"

	textAdminHelp = "❗ ВЫ ЯВЛЯЕТЕСЬ АДМИНИСТРАТОРОМ\n\n" +
		"ℹ Вывести список вопросов\n/ls\n\n" +
		"ℹ Удалить вопрос\n/rm <id>\n\n" +
		"Вместо <id> нужно указать идентификатор чата. " +
		"Идентификатор находится перед вопросом пользователя в круглых скобках."

	textNoQuestions       = "✅ Вопросов не найдено"
	textNoPermission      = "❌ Извините, у вас недостаточно прав"
	textNoChatID          = "❌ Извините, вы не указали идентификатор чата"
	textBadChatID         = "❌ Извините, вы указали некорректный идентификатор чата"
	textNoSuchUser        = "❌ Извините, такого пользователя не существует"
	textUserHasNoQuestion = "❌ Извините, у пользователя нет вопроса"
	textQuestionRemoved   = "✅ Вопрос удалён"
	textQuestionResolved  = "✅ Ваш вопрос был решён\n\n" +
		"Если у вас остались ещё вопросы, не бойтесь задавать их снова!"

	textUnknownAction = "❌ Извините, я не знаю такого действия"
)
