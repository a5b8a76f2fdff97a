package models

// Category 支出/预算类别，固定的 10 个标签
type Category string

// 类别常量（顺序即展示顺序）
const (
	CategoryFoodDining    Category = "Food & Dining"
	CategoryRentMortgage  Category = "Rent & Mortgage"
	CategoryTransport     Category = "Transportation"
	CategoryUtilities     Category = "Utilities"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryEducation     Category = "Education"
	CategoryPersonalCare  Category = "Personal Care"
	CategoryOther         Category = "Other"
)

var categories = []Category{
	CategoryFoodDining,
	CategoryRentMortgage,
	CategoryTransport,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryPersonalCare,
	CategoryOther,
}

// GetCategories 获取所有类别（返回副本）
func GetCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid 是否属于固定类别
func (c Category) IsValid() bool {
	for _, cat := range categories {
		if cat == c {
			return true
		}
	}
	return false
}
