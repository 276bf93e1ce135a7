package dao

import (
	"fmt"
	"strings"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/domain"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// buildExpression translates a predicate tree into gorm clause expressions
// buildExpression 将条件树翻译为 gorm clause 表达式
// dialect is the gorm dialector name, it picks the substring function for Contains.
func buildExpression(sch *schema.Schema, dialect string, p domain.Predicate) (clause.Expression, error) {
	switch v := p.(type) {
	case nil:
		return nil, nil
	case domain.Equals:
		if strings.Contains(v.Field, ".") {
			return relationEquals(sch, v)
		}
		col, err := column(sch, v.Field)
		if err != nil {
			return nil, err
		}
		return clause.Eq{Column: col, Value: v.Value}, nil
	case domain.Contains:
		col, err := column(sch, v.Field)
		if err != nil {
			return nil, err
		}
		return containsExpr(dialect, col, v.Text), nil
	case domain.And:
		exprs, err := buildAll(sch, dialect, v)
		if err != nil {
			return nil, err
		}
		return clause.And(exprs...), nil
	case domain.Or:
		exprs, err := buildAll(sch, dialect, v)
		if err != nil {
			return nil, err
		}
		return clause.Or(exprs...), nil
	}
	return nil, fmt.Errorf("unsupported predicate %T", p)
}

func buildAll(sch *schema.Schema, dialect string, ps []domain.Predicate) ([]clause.Expression, error) {
	out := make([]clause.Expression, 0, len(ps))
	for _, p := range ps {
		e, err := buildExpression(sch, dialect, p)
		if err != nil {
			return nil, err
		}
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// containsExpr case-sensitive substring match, the text never acts as a pattern
// containsExpr 区分大小写的子串匹配，文本不会被当作通配模式
func containsExpr(dialect string, col clause.Column, text string) clause.Expression {
	switch dialect {
	case "sqlite":
		return clause.Expr{SQL: "instr(?, ?) > 0", Vars: []any{col, text}}
	case "postgres":
		return clause.Expr{SQL: "strpos(?, ?) > 0", Vars: []any{col, text}}
	case "mysql":
		// 按字节比较，不受排序规则的大小写折叠影响
		return clause.Expr{SQL: "LOCATE(CAST(? AS BINARY), CAST(? AS BINARY)) > 0", Vars: []any{text, col}}
	}
	return clause.Expr{SQL: `? LIKE ? ESCAPE '\'`, Vars: []any{col, "%" + escapeLike(text) + "%"}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义 LIKE 的通配符与转义符本身
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// column only accepts columns that exist on the model
// column 只接受模型上存在的列
func column(sch *schema.Schema, name string) (clause.Column, error) {
	if sch.LookUpField(name) == nil {
		return clause.Column{}, fmt.Errorf("unknown column %q on %s", name, sch.Table)
	}
	return clause.Column{Table: clause.CurrentTable, Name: name}, nil
}

// relationEquals resolves "tags.id" through the many-to-many join table:
// id IN (SELECT article_id FROM article_tag WHERE tag_id = ?)
func relationEquals(sch *schema.Schema, p domain.Equals) (clause.Expression, error) {
	name, target, _ := strings.Cut(p.Field, ".")

	rel := lookupRelation(sch, name)
	if rel == nil || rel.Type != schema.Many2Many || rel.JoinTable == nil {
		return nil, fmt.Errorf("unknown many-to-many relation %q on %s", name, sch.Table)
	}
	if pk := rel.FieldSchema.PrioritizedPrimaryField; pk == nil || pk.DBName != target {
		return nil, fmt.Errorf("relation %q can only be matched by primary key", p.Field)
	}

	var ownCol, relCol string
	for _, ref := range rel.References {
		if ref.OwnPrimaryKey {
			ownCol = ref.ForeignKey.DBName
		} else {
			relCol = ref.ForeignKey.DBName
		}
	}

	return clause.Expr{
		SQL: "? IN (SELECT ? FROM ? WHERE ? = ?)",
		Vars: []any{
			clause.Column{Table: clause.CurrentTable, Name: sch.PrioritizedPrimaryField.DBName},
			clause.Column{Name: ownCol},
			clause.Table{Name: rel.JoinTable.Table},
			clause.Column{Name: relCol},
			p.Value,
		},
	}, nil
}

func lookupRelation(sch *schema.Schema, name string) *schema.Relationship {
	for field, rel := range sch.Relationships.Relations {
		if strings.EqualFold(field, name) {
			return rel
		}
	}
	return nil
}

func orderBy(sch *schema.Schema, key domain.SortKey) (clause.OrderBy, error) {
	col, err := column(sch, key.Column)
	if err != nil {
		return clause.OrderBy{}, err
	}
	pk := clause.Column{Table: clause.CurrentTable, Name: sch.PrioritizedPrimaryField.DBName}
	// 主键同向排序保证分页稳定
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: col, Desc: key.Desc},
		{Column: pk, Desc: key.Desc},
	}}, nil
}
