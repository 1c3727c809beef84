package service

import "tshirt-design-api/internal/domain"

// Decision 调用者对某个设计的许可：能否读/改内容，以及允许写入哪些状态值。
// 不在 Statuses 里的状态请求静默忽略，不报错。
type Decision struct {
	Allowed  bool
	Statuses []domain.Status
}

func (d Decision) CanSetStatus(s domain.Status) bool {
	for _, v := range d.Statuses {
		if v == s {
			return true
		}
	}
	return false
}

var (
	ownerStatuses = []domain.Status{domain.StatusDraft, domain.StatusSubmitted}
	adminStatuses = []domain.Status{domain.StatusDraft, domain.StatusSubmitted, domain.StatusApproved, domain.StatusRejected}
)

// decide owner 分支先于 admin 判定：管理员对自己的设计走 owner 规则，不能自审。
// 分支顺序即策略，要改自审规则只动这里。
func decide(caller domain.Identity, d *domain.Design) Decision {
	switch {
	case caller.ID == d.OwnerID:
		return Decision{Allowed: true, Statuses: ownerStatuses}
	case caller.IsAdmin():
		return Decision{Allowed: true, Statuses: adminStatuses}
	default:
		return Decision{}
	}
}
