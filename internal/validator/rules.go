package validator

import (
	"log"
	"math"
	"strconv"

	"house_rent_web/internal/services/dto"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Приложение не должно запускаться с неполным набором правил
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'nonneg': строка - конечное число >= 0 (цена, площадь)
	mustRegister("nonneg", validateNonNegative)

	// диапазоны min/max формы поиска
	v.RegisterStructValidation(validateSearchRanges, dto.SearchForm{})
}

// --- Функции валидации ---

func validateNonNegative(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение - фильтр не задан
	}
	f, err := strconv.ParseFloat(value, 64)
	// NaN не проходит f >= 0, бесконечность отсекаем явно
	return err == nil && f >= 0 && !math.IsInf(f, 0)
}

// validateSearchRanges: max_* не меньше min_*, если заданы оба
func validateSearchRanges(sl validator.StructLevel) {
	form := sl.Current().Interface().(dto.SearchForm)

	checkRange := func(minRaw, maxRaw, field, fieldName, param string) {
		lo, hi := dto.OptFloat(minRaw), dto.OptFloat(maxRaw)
		if lo != nil && hi != nil && *hi < *lo {
			sl.ReportError(maxRaw, field, fieldName, "range", param)
		}
	}
	checkRange(form.MinPrice, form.MaxPrice, "max_price", "MaxPrice", "min_price")
	checkRange(form.MinAcreage, form.MaxAcreage, "max_acreage", "MaxAcreage", "min_acreage")
}
