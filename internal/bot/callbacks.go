package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// faqAnswers maps FAQ inline-button callback data to the informational
// reply for that topic.
var faqAnswers = map[string]string{
	"fittings": "ℹ Фурнитура - это различные детали и механизмы для сборки и крепления конструкций\n\n" +
		"- Петли: для соединения подвижных элементов (двери, окна, крышки);\n" +
		"- Замки: для безопасности и блокировки;\n" +
		"- Ручки: для управления подвижными частями;\n" +
		"- Направляющие и ролики: для плавного движения;\n" +
		"- Газлифт: для мягкого закрытия дверей;\n" +
		"- Автоматические системы: дистанционное управление дверьми.",

	"materials": "ℹ Материалы в мебельном производстве\n\n" +
		"- Древесина: каркасы, фасады, столешницы;\n" +
		"- Фанера: фасады, задние стенки;\n" +
		"- ДСП: задние стенки, днища ящиков;\n" +
		"- МДФ: фасады, задние стенки;\n" +
		"- Стекло: фасады, столешницы;\n" +
		"- Металл: каркасы, опоры, ножки;\n" +
		"- Пластик: задние стенки, днища ящиков;\n" +
		"- Ткань: обивка мебели, чехлы.",

	"fasteners": "ℹ Крепёж - это элементы для соединения частей конструкций\n\n" +
		"- Саморезы: для деревянных деталей;\n" +
		"- Евровинт: с шестигранной головкой;\n" +
		"- Шканты: цилиндры из дерева;\n" +
		"- Стяжка: фиксация и выравнивание элементов;\n" +
		"- Эксцентрик: регулировка положения элементов.\n\n" +
		"Редактирование крепежа осуществляется в модуле Базис-Мебельщик.",

	"edge_band": "ℹ Кромка - материал для закрытия торцов панелей\n\n" +
		"- ПВХ-кромка: для ЛДСП, МДФ;\n" +
		"- Меламиновая: устойчива к влаге;\n" +
		"- Алюминиевая: защита от коррозии;\n" +
		"- Акриловая: устойчива к химии;\n" +
		"- Кромка из дерева: элегантный внешний вид;\n" +
		"- Кромка с плёнкой: декоративные варианты;\n" +
		"- Кромка с фрезеровкой: оригинальный дизайн.",

	"design_functions": "ℹ Функции проектирования\n\n" +
		"- 'Растянуть и сдвинуть элементы': выделите область, укажите точку и переместите;\n" +
		"- 'Растянуть и сдвинуть выделенные элементы': работает только с выделенными объектами;\n" +
		"- 'Выделить окном': выделение элементов в зависимости от направления движения мыши.",

	"copying": "ℹ Функции копирования\n\n" +
		"- 'Копировать': вставка в другой файл;\n" +
		"- 'Копировать по точкам': внутри одного файла, возможен поворот и отражение.",

	"fastener_count": "ℹ Количество креплений\n\n" +
		"- До 200 мм: 1 крепление;\n" +
		"- 200–700 мм: 2 крепления;\n" +
		"- 700–1200 мм: 3 крепления;\n" +
		"- 1200–2000 мм: 4 крепления;\n" +
		"- Более 2000 мм: 5 креплений.\n\n" +
		"ℹ Количество петель\n\n" +
		"- До 950 мм: 2 петли;\n" +
		"- 950–1500 мм: 3 петли;\n" +
		"- 1500–2000 мм: 4 петли;\n" +
		"- Более 2000 мм: 5 петель.",
}

// handleCallbackQuery answers the query and, for a known FAQ topic, sends
// its informational text. Unknown callback data is acknowledged and ignored.
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	b.transport.AnswerCallback(query.ID)

	answer, ok := faqAnswers[query.Data]
	if !ok {
		return
	}
	b.transport.SendMessage(query.From.ID, answer, nil)
}
