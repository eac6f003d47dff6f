package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrPostNotFound     = errors.New("文章不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrTagNotFound      = errors.New("标签不存在")
	ErrAuthorNotFound   = errors.New("作者不存在")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrCommentEmpty     = errors.New("评论内容不能为空")
	ErrEmailInvalid     = errors.New("邮箱格式不正确")
	ErrSlugExists       = errors.New("slug 已存在")
	ErrNameExists       = errors.New("名称已存在")
	ErrEmailExists      = errors.New("邮箱已存在")
	ErrSubscribeMissing = errors.New("订阅记录不存在")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrPostNotFound:     NotFound,
	ErrCategoryNotFound: NotFound,
	ErrTagNotFound:      NotFound,
	ErrAuthorNotFound:   NotFound,
	ErrCommentNotFound:  NotFound,
	ErrCommentEmpty:     BadRequest,
	ErrEmailInvalid:     BadRequest,
	ErrSlugExists:       BadRequest,
	ErrNameExists:       BadRequest,
	ErrEmailExists:      BadRequest,
	ErrSubscribeMissing: NotFound,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}

// isDuplicateKeyErr 识别唯一约束冲突（MySQL 1062 或 gorm 翻译后的哨兵）
func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translateUnique 把唯一约束冲突换成 slug 冲突哨兵，其余错误原样返回。
// 仅适用于 slug 是唯一约束的场景（文章）；分类和标签还有 name 唯一约束，
// 冲突来源需要回查区分，见 classifyTaxonomyConflict。
func translateUnique(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKeyErr(err) {
		return ErrSlugExists
	}
	return err
}
