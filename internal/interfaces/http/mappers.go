package http

import (
	"github.com/tu-usuario/care-pro/internal/application/dto"
	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		IsAdmin:        u.IsAdmin,
		Status:         u.Status,
		IsActive:       u.IsActive,
		ApprovedByID:   u.ApprovedByID,
		ApprovedAt:     u.ApprovedAt,
		RejectedReason: u.RejectedReason,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toBeneficiaryResponse(b *entity.Beneficiary) dto.BeneficiaryResponse {
	return dto.BeneficiaryResponse{
		ID:                b.ID,
		OrganizationID:    b.OrganizationID,
		FirstName:         b.FirstName,
		LastName:          b.LastName,
		DateOfBirth:       b.DateOfBirth,
		Gender:            b.Gender,
		Phone:             b.Phone,
		Address:           b.Address,
		BeneficiaryType:   b.BeneficiaryType,
		Status:            b.Status,
		CreatedByID:       b.CreatedByID,
		OrientedByID:      b.OrientedByID,
		OrientedAt:        b.OrientedAt,
		OrientationReason: b.OrientationReason,
		AssignedToID:      b.AssignedToID,
		AssignedAt:        b.AssignedAt,
		IsActive:          b.IsActive,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:            n.ID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		SenderID:      n.SenderID,
		ReceiverID:    n.ReceiverID,
		BeneficiaryID: n.BeneficiaryID,
		Status:        n.Status,
		Metadata:      n.Metadata,
		CreatedAt:     n.CreatedAt,
		ReadAt:        n.ReadAt,
	}
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	grants := make([]dto.GrantInput, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		grants = append(grants, dto.GrantInput{
			Module:         p.Module,
			Action:         p.Action,
			OwnRecordsOnly: p.OwnRecordsOnly,
		})
	}
	return dto.RoleResponse{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Name:           r.Name,
		Description:    r.Description,
		Grants:         grants,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toOrganizationResponse(o *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:               o.ID,
		Name:             o.Name,
		Status:           o.Status,
		MaxUsers:         o.MaxUsers,
		MaxBeneficiaries: o.MaxBeneficiaries,
		MaxStorageGB:     o.MaxStorageGB.String(),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
