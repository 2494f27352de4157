package dto

// PageQuery 分页查询参数
// validator tag说明:
// - omitempty: 不传时使用默认值
// - min/max: 防御超大页与非法页码
type PageQuery struct {
	Page int `form:"page" binding:"omitempty,min=1" example:"1"`
	Size int `form:"size" binding:"omitempty,min=1,max=100" example:"20"`
}

// Normalize 填充分页默认值（page=1, size=20）
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = 20
	}
}
