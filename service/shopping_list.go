package service

import (
	"Foodgram/dao"
	"Foodgram/pkg/log"
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ReportHeader 购物清单固定表头
const ReportHeader = "Foodgram\nКорзина покупок:\n"

var _ IShoppingListService = (*ShoppingListService)(nil)

type IShoppingListService interface {
	// Report 汇总购物清单中全部食谱的食材用量，按名称排序
	Report(ctx context.Context, userID uint64) (string, error)
}

type ShoppingListService struct {
	CartDAO *dao.ShoppingCartDAO
	LineDAO *dao.RecipeIngredientDAO
}

type reportLine struct {
	name   string
	unit   string
	amount int64
}

func (s *ShoppingListService) Report(ctx context.Context, userID uint64) (string, error) {
	recipeIDs, err := s.CartDAO.ObjectIDs(ctx, userID)
	if err != nil {
		return "", err
	}
	totals, err := s.LineDAO.SumByIngredient(ctx, recipeIDs)
	if err != nil {
		return "", err
	}

	type key struct{ name, unit string }
	grouped := make(map[key]*reportLine, len(totals))
	lines := make([]*reportLine, 0, len(totals))
	for _, t := range totals {
		if t.Name == nil || t.MeasurementUnit == nil {
			log.L.Warn("shopping list references missing ingredient",
				zap.Uint64("user_id", userID),
				zap.Uint64("ingredient_id", t.IngredientID),
				zap.Int64("amount", t.Amount),
			)
			continue
		}
		k := key{*t.Name, *t.MeasurementUnit}
		if line, ok := grouped[k]; ok {
			line.amount += t.Amount
			continue
		}
		line := &reportLine{name: k.name, unit: k.unit, amount: t.Amount}
		grouped[k] = line
		lines = append(lines, line)
	}

	// 按字节序比较，结果不受数据库排序规则影响
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].name != lines[j].name {
			return lines[i].name < lines[j].name
		}
		return lines[i].unit < lines[j].unit
	})

	var b strings.Builder
	b.WriteString(ReportHeader)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s, %d %s\n", line.name, line.amount, line.unit)
	}
	return b.String(), nil
}
