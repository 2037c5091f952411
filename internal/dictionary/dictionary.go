// Package dictionary 提供单词合法性查询。
// 词表在启动时一次性加载，查询为纯内存操作。
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

//go:embed words.txt
var defaultWordList string

// Dictionary 合法单词集合
type Dictionary struct {
	words map[string]struct{}
}

// Contains 查询单词是否合法（大小写不敏感）
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len 返回词表大小
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Default 返回内置默认词表
func Default() *Dictionary {
	d, err := fromReader(strings.NewReader(defaultWordList))
	if err != nil {
		// 内置词表是编译期常量，解析失败属于编程错误
		panic(err)
	}
	return d
}

// Load 从文件加载词表，每行一个单词，# 开头为注释。
// path 为空时返回内置默认词表。
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开词表失败: %w", err)
	}
	defer f.Close()

	return fromReader(f)
}

// fromReader 逐行读取词表。
// 首字母大写的条目视为专有名词，在加载阶段剔除，查询阶段不再判断。
func fromReader(r io.Reader) (*Dictionary, error) {
	words := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if isProperNoun(line) {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取词表失败: %w", err)
	}

	return &Dictionary{words: words}, nil
}

func isProperNoun(word string) bool {
	for _, c := range word {
		return unicode.IsUpper(c)
	}
	return false
}
