package model

import "time"

// ==================== 发货状态常量 ====================

// ShipmentStatus 发货标签状态
type ShipmentStatus string

const (
	ShipmentStatusPending  ShipmentStatus = "pending"  // 待处理
	ShipmentStatusPrinting ShipmentStatus = "printing" // 打印中
	ShipmentStatusPrinted  ShipmentStatus = "printed"  // 已打印
	ShipmentStatusFailed   ShipmentStatus = "failed"   // 打印失败
)

// Valid 是否为已知发货状态
func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusPrinting, ShipmentStatusPrinted, ShipmentStatusFailed:
		return true
	}
	return false
}

// ==================== Shipment 发货标签 ====================

// Shipment 发货标签记录
// OrderID 为软引用，不做外键校验
type Shipment struct {
	ID        string         `json:"id"`
	OrderID   string         `json:"orderId"`
	Carrier   string         `json:"carrier"`
	LabelURL  string         `json:"labelUrl,omitempty"`
	Printer   string         `json:"printer,omitempty"`
	Tracking  string         `json:"tracking,omitempty"`
	Status    ShipmentStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ==================== ShipmentPatch 部分更新 ====================

// ShipmentPatch 发货标签部分更新
type ShipmentPatch struct {
	Carrier  *string
	LabelURL *string
	Printer  *string
	Tracking *string
	Status   *ShipmentStatus
}

// Apply 将补丁合并到发货标签
func (p ShipmentPatch) Apply(s *Shipment) {
	if p.Carrier != nil {
		s.Carrier = *p.Carrier
	}
	if p.LabelURL != nil {
		s.LabelURL = *p.LabelURL
	}
	if p.Printer != nil {
		s.Printer = *p.Printer
	}
	if p.Tracking != nil {
		s.Tracking = *p.Tracking
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
