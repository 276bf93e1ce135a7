// Package domain 定义领域模型和接口
package domain

import (
	"fmt"
	"strings"
)

// Predicate is a filter expression evaluated by the storage layer
// Predicate 由存储层解释执行的过滤表达式
//
// Fields name storage columns. A dotted field ("tags.id") addresses a
// column of a related record.
// 字段为存储列名，带点的字段（如 "tags.id"）指向关联记录的列。
type Predicate interface {
	String() string
	predicate()
}

// Equals 字段等于给定值
type Equals struct {
	Field string
	Value any
}

// Contains 字段包含给定文本，区分大小写，文本中的 % 与 _ 按字面匹配
type Contains struct {
	Field string
	Text  string
}

// And 所有子条件同时成立
type And []Predicate

// Or 任一子条件成立
type Or []Predicate

func (Equals) predicate()   {}
func (Contains) predicate() {}
func (And) predicate()      {}
func (Or) predicate()       {}

func (p Equals) String() string {
	return fmt.Sprintf("%s = %v", p.Field, p.Value)
}

func (p Contains) String() string {
	return fmt.Sprintf("%s LIKE %%%s%%", p.Field, p.Text)
}

func (p And) String() string {
	return join(p, " AND ")
}

func (p Or) String() string {
	return join(p, " OR ")
}

func join(ps []Predicate, sep string) string {
	parts := make([]string, 0, len(ps))
	for _, c := range ps {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// AllOf combines predicates with AND, nil entries are skipped
// AllOf 以 AND 组合条件，忽略 nil
// It returns nil when nothing is left and the bare predicate when only one is.
// 全部为空时返回 nil，仅剩一个时直接返回该条件。
func AllOf(ps ...Predicate) Predicate {
	out := compact(ps)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return And(out)
}

// AnyOf combines predicates with OR, nil entries are skipped
// AnyOf 以 OR 组合条件，忽略 nil
func AnyOf(ps ...Predicate) Predicate {
	out := compact(ps)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return Or(out)
}

func compact(ps []Predicate) []Predicate {
	out := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Match evaluates p in memory. get returns every value the record holds
// for a field, a many-to-many path yields one value per related record.
// Match 在内存中求值。get 返回记录在该字段上的全部取值，多对多路径返回每个关联记录的值。
// A nil predicate matches everything.
func Match(p Predicate, get func(field string) []any) bool {
	switch v := p.(type) {
	case nil:
		return true
	case Equals:
		for _, x := range get(v.Field) {
			if fmt.Sprint(x) == fmt.Sprint(v.Value) {
				return true
			}
		}
		return false
	case Contains:
		for _, x := range get(v.Field) {
			if strings.Contains(fmt.Sprint(x), v.Text) {
				return true
			}
		}
		return false
	case And:
		for _, c := range v {
			if !Match(c, get) {
				return false
			}
		}
		return true
	case Or:
		for _, c := range v {
			if Match(c, get) {
				return true
			}
		}
		return false
	}
	return false
}
