package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"tshirt-design-api/internal/asset"
	"tshirt-design-api/internal/core/cache"
	"tshirt-design-api/internal/domain"
	"tshirt-design-api/pkg/utils"
)

const designCacheTTL = 10 * time.Minute

func designKey(id string) string { return "design:" + id }

// DesignService 设计生命周期核心：状态机 + 归属/角色授权 + 画布图落盘
type DesignService struct {
	designs domain.DesignRepository
	assets  *asset.Store
	cache   *cache.Cache // 可为 nil（不启用缓存）
	log     *zap.Logger
}

func NewDesignService(designs domain.DesignRepository, assets *asset.Store, c *cache.Cache, log *zap.Logger) *DesignService {
	return &DesignService{designs: designs, assets: assets, cache: c, log: log}
}

type CreateDesignInput struct {
	Title            string
	Description      string
	TshirtColor      string
	FrontImageBase64 string
	BackImageBase64  string
	FrontObjects     datatypes.JSON
	BackObjects      datatypes.JSON
}

type UpdateDesignInput struct {
	Title       *string
	Description *string
	TshirtColor *string
	Status      *domain.Status
}

// Create 校验先行；图片各自独立可选，图先落盘、记录后写（崩溃窗口接受孤儿文件）
func (s *DesignService) Create(ctx context.Context, caller domain.Identity, in CreateDesignInput) (*domain.Design, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrTitleRequired
	}

	now := time.Now()
	frontRef, err := s.assets.Save(in.FrontImageBase64, fmt.Sprintf("front_%d.png", now.UnixNano()))
	if err != nil {
		return nil, err
	}
	backRef, err := s.assets.Save(in.BackImageBase64, fmt.Sprintf("back_%d.png", now.UnixNano()))
	if err != nil {
		return nil, err
	}

	color := in.TshirtColor
	if color == "" {
		color = domain.DefaultTshirtColor
	}

	d := &domain.Design{
		ID:            utils.NewID(),
		OwnerID:       caller.ID,
		Title:         in.Title,
		Description:   in.Description,
		TshirtColor:   color,
		FrontImageURL: refPtr(frontRef),
		BackImageURL:  refPtr(backRef),
		FrontObjects:  orEmptyList(in.FrontObjects),
		BackObjects:   orEmptyList(in.BackObjects),
		Status:        domain.StatusDraft,
	}
	if err := s.designs.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListOwn 只看自己的，按创建时间倒序
func (s *DesignService) ListOwn(ctx context.Context, caller domain.Identity) ([]domain.Design, error) {
	return s.designs.FindByOwner(caller.ID)
}

func (s *DesignService) GetByID(ctx context.Context, id string, caller domain.Identity) (*domain.Design, error) {
	d, err := s.loadDesign(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if !decide(caller, d).Allowed {
		return nil, domain.ErrForbidden
	}
	return d, nil
}

// ListAll 管理端列表；admin 角色由 transport 层先行拦截，这里不再重复校验。
// status 为空不过滤；枚举外的值自然得到空集。
func (s *DesignService) ListAll(ctx context.Context, status domain.Status) ([]domain.Design, error) {
	return s.designs.FindAll(status)
}

// Update 内容字段随许可更新；状态值不在许可集合内时静默保持原状态
func (s *DesignService) Update(ctx context.Context, id string, caller domain.Identity, in UpdateDesignInput) (*domain.Design, error) {
	d, err := s.designs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	dec := decide(caller, d)
	if !dec.Allowed {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.ErrTitleRequired
		}
		d.Title = *in.Title
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.TshirtColor != nil {
		d.TshirtColor = *in.TshirtColor
	}
	if in.Status != nil && dec.CanSetStatus(*in.Status) {
		d.Status = *in.Status
	}

	if err := s.designs.Update(d); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return d, nil
}

// Delete 先尽力删图（失败只告警不拦截），再删记录
func (s *DesignService) Delete(ctx context.Context, id string, caller domain.Identity) error {
	d, err := s.designs.FindByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if !decide(caller, d).Allowed {
		return domain.ErrForbidden
	}

	for _, ref := range []*string{d.FrontImageURL, d.BackImageURL} {
		if ref == nil {
			continue
		}
		if err := s.assets.Remove(*ref); err != nil {
			s.log.Warn("remove design asset",
				zap.String("design", id), zap.String("ref", *ref), zap.Error(err))
		}
	}

	if err := s.designs.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *DesignService) loadDesign(ctx context.Context, id string) (*domain.Design, error) {
	if s.cache == nil {
		return s.designs.FindByID(id)
	}
	return cache.GetOrLoadJSON[domain.Design](s.cache, ctx, designKey(id), designCacheTTL,
		func(context.Context) (*domain.Design, error) {
			return s.designs.FindByID(id)
		})
}

func (s *DesignService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, designKey(id))
	}
}

func refPtr(ref string) *string {
	if ref == "" {
		return nil
	}
	return &ref
}

func orEmptyList(j datatypes.JSON) datatypes.JSON {
	if len(j) == 0 {
		return datatypes.JSON("[]")
	}
	return j
}
