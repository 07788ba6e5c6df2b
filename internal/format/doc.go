// Package format renders an ast tree back to css text.
//
// Назначение: печать узлов по их raws; для узлов без raws (созданных
// плагинами) оформление выводится из соседних узлов того же дерева, а если
// образца нет, берётся фиксированный стиль по умолчанию.
// Не делает: разбор, source map (pipeline получает позиции через Builder).
// Зависимости: internal/ast.
//
// Неизменённое дерево печатается байт в байт так, как было разобрано.
package format
