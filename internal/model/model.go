// Package model contains data structures for launch configuration and DTO exchanged with a search node
package model

const (
	EnvCaseInsensitive = "CASE_INSENSITIVE" // если задана (любое значение) - поиск без учета регистра
	EnvNode            = "MINIGREP_NODE"    // адрес search-node для удаленного поиска
)

// Config - параметры запуска CLI
type Config struct {
	Query         string // подстрока для поиска
	FileName      string // файл, в котором ищем
	CaseSensitive bool   // false, если задана CASE_INSENSITIVE
	Node          string // пусто - ищем локально
}

// Remote reports whether the search has to be delegated to a search node.
func (c *Config) Remote() bool {
	return c.Node != ""
}

// NodeParam - параметры запуска search-node
type NodeParam struct {
	Address string
	LogFile string // пусто - логируем только в stdout
}

type SearchTask struct {
	TaskID        string `json:"tid" binding:"required"`
	Query         string `json:"query"`
	Document      string `json:"document"`
	CaseSensitive bool   `json:"case_sensitive"`
}

type SearchResult struct {
	TaskID   string   `json:"tid" binding:"required"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
