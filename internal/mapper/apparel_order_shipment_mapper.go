package mapper

import (
	"time"

	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"
)

func ApparelOrderShipmentToDto(s model.ApparelOrderShipment) dto.ApparelOrderShipmentDto {
	return dto.ApparelOrderShipmentDto{
		Base:           base(s.ID, s.Version, s.CreatedAt, s.UpdatedAt),
		ShipmentDate:   timePtr(s.ShipmentDate),
		Carrier:        s.Carrier,
		TrackingNumber: s.TrackingNumber,
	}
}

func ApparelOrderShipmentDtoToApparelOrderShipment(d dto.ApparelOrderShipmentDto) model.ApparelOrderShipment {
	s := model.ApparelOrderShipment{Version: derefOr(d.Version, 0)}
	UpdateShipmentFromDto(d, &s)
	return s
}

// 出荷日・運送会社・追跡番号を上書き
func UpdateShipmentFromDto(d dto.ApparelOrderShipmentDto, s *model.ApparelOrderShipment) {
	s.ShipmentDate = derefOr(d.ShipmentDate, time.Time{})
	s.Carrier = d.Carrier
	s.TrackingNumber = d.TrackingNumber
}
