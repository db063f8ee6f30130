package handlers

import "trackswift/internal/domain"

func toShipmentDTO(s *domain.Shipment) shipmentDTO {
	return shipmentDTO{
		TrackingID:   s.TrackingID,
		SenderName:   s.SenderName,
		ReceiverName: s.ReceiverName,
		Origin:       s.Origin,
		Destination:  s.Destination,
		Status:       string(s.Status),
		Owner:        s.Owner,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toShipmentDTOs(list []domain.Shipment) []shipmentDTO {
	out := make([]shipmentDTO, 0, len(list))
	for i := range list {
		out = append(out, toShipmentDTO(&list[i]))
	}
	return out
}

func toManifestDTO(m *domain.Manifest) *manifestDTO {
	if m == nil {
		return nil
	}
	return &manifestDTO{Items: m.Items, Quantity: m.Quantity, TotalCost: m.TotalCost}
}

func toOrderDTOs(list []domain.ShipmentWithManifest) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for i := range list {
		out = append(out, orderDTO{
			shipmentDTO: toShipmentDTO(&list[i].Shipment),
			Manifest:    toManifestDTO(list[i].Manifest),
		})
	}
	return out
}

func fromManifestDTO(m *manifestDTO) *domain.Manifest {
	if m == nil {
		return nil
	}
	return &domain.Manifest{Items: m.Items, Quantity: m.Quantity, TotalCost: m.TotalCost}
}
