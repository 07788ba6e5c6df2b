// Package fuzztests houses Go fuzz harnesses for the front of the pipeline
// (text -> lexer -> parser -> printer). They look for panics and hangs on
// arbitrary input and check that whatever parses prints back unchanged.
//
// Назначение: прогонять байты через лексер и парсер и проверять инварианты
// из internal/testkit.
//
// Не делает: загрузку предыдущих source map, запись файлов, запуск CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/testkit.
package fuzztests
