package bank

import "SafetyQuizBot/internal/core"

// Default returns the built-in sections used when no question directory
// is configured.
func Default() *Bank {
	return New([]core.Section{
		{
			Name: "🦺 ОП",
			Questions: []core.Question{
				{
					Text: "Що потрібно зробити перед початком роботи на новому обладнанні?",
					Options: []core.Option{
						{Label: "Пройти інструктаж з охорони праці", Correct: true},
						{Label: "Одразу розпочати роботу", Correct: false},
						{Label: "Запитати колегу пізніше", Correct: false},
					},
				},
				{
					Text: "Які засоби індивідуального захисту обов'язкові у виробничій зоні?",
					Options: []core.Option{
						{Label: "Захисні окуляри", Correct: true},
						{Label: "Каска", Correct: true},
						{Label: "Сонцезахисні окуляри", Correct: false},
						{Label: "Сигнальний жилет", Correct: true},
					},
				},
				{
					Text: "Що робити при виявленні несправності обладнання?",
					Options: []core.Option{
						{Label: "Зупинити роботу та повідомити керівника", Correct: true},
						{Label: "Продовжити роботу обережно", Correct: false},
						{Label: "Полагодити самостійно без дозволу", Correct: false},
					},
				},
			},
		},
		{
			Name: "📚 Загальні",
			Questions: []core.Question{
				{
					Text: "Куди слід звертатися у разі нещасного випадку на виробництві?",
					Options: []core.Option{
						{Label: "До безпосереднього керівника", Correct: true},
						{Label: "До служби охорони праці", Correct: true},
						{Label: "Нікуди, якщо травма незначна", Correct: false},
					},
				},
				{
					Text: "Як часто проводиться повторний інструктаж?",
					Options: []core.Option{
						{Label: "Не рідше одного разу на 6 місяців", Correct: true},
						{Label: "Один раз при прийомі на роботу", Correct: false},
						{Label: "Лише після порушень", Correct: false},
					},
				},
			},
		},
		{
			Name: "⚙️ LEAN",
			Questions: []core.Question{
				{
					Text: "Які з перелічених елементів належать до системи 5S?",
					Options: []core.Option{
						{Label: "Сортування", Correct: true},
						{Label: "Систематизація", Correct: true},
						{Label: "Сертифікація", Correct: false},
						{Label: "Стандартизація", Correct: true},
					},
				},
				{
					Text: "Що таке «муда» у LEAN-термінології?",
					Options: []core.Option{
						{Label: "Втрати, що не створюють цінності", Correct: true},
						{Label: "Різновид обладнання", Correct: false},
						{Label: "Показник якості", Correct: false},
					},
				},
			},
		},
		{
			Name: "💪 Hard Test",
			Questions: []core.Question{
				{
					Text: "Які фактори належать до шкідливих виробничих факторів?",
					Options: []core.Option{
						{Label: "Підвищений рівень шуму", Correct: true},
						{Label: "Запиленість повітря", Correct: true},
						{Label: "Комфортна температура", Correct: false},
						{Label: "Вібрація", Correct: true},
					},
				},
				{
					Text: "Хто несе відповідальність за стан охорони праці на підприємстві?",
					Options: []core.Option{
						{Label: "Роботодавець", Correct: true},
						{Label: "Лише працівники", Correct: false},
						{Label: "Профспілка", Correct: false},
					},
				},
				{
					Text: "У яких випадках проводиться позаплановий інструктаж?",
					Options: []core.Option{
						{Label: "Після нещасного випадку", Correct: true},
						{Label: "При зміні технологічного процесу", Correct: true},
						{Label: "Щопонеділка", Correct: false},
					},
				},
			},
		},
	})
}
