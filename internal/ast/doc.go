// Package ast is the mutable css tree.
//
// Назначение:
//   - пять видов узлов (Root, Rule, AtRule, Decl, Comment) с общими raws,
//     source и ссылкой на родителя;
//   - мутации контейнеров, которые безопасны во время Each;
//   - дескрипторы для создания узлов из простых полей;
//   - глубокое копирование и JSON.
//
// Не делает: разбор и печать текста (parser, format).
//
// Родитель хранится как обычный указатель и ничем не владеет: узел
// принадлежит только слайсу nodes своего контейнера. Если parent задан,
// этот слайс содержит узел ровно один раз.
//
// Узлы создаются только через конструкторы (NewRule, NewDecl, ...);
// нулевое значение структуры не готово к работе.
package ast
