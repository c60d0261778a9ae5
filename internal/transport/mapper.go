package transport

import "github.com/Skotchmaster/phone_shop/internal/models"

func ToUserDTO(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
	}
}

func ToAddressDTO(a *models.Address) *AddressDTO {
	if a == nil {
		return nil
	}
	return &AddressDTO{
		ID:      a.ID,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *ToUserDTO(&users[i]))
	}
	return out
}

func ToCategoryDTO(c *models.Category) *CategoryDTO {
	return &CategoryDTO{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func ToCategoryDTOs(cs []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *ToCategoryDTO(&cs[i]))
	}
	return out
}

func ToProductDTO(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}

func ToProductDTOs(ps []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *ToProductDTO(&ps[i]))
	}
	return out
}

// OrderSummary carries the order header without its items.
func OrderSummary(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:         o.ID,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		CreatedAt:  o.CreatedAt,
	}
}

// ToOrderItemDTO maps an item. The order summary comes from the loaded Order
// association, or from parent when the association is absent.
func ToOrderItemDTO(it *models.OrderItem, parent *models.Order) OrderItemDTO {
	dto := OrderItemDTO{
		ID:        it.ID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		User:      ToUserDTO(it.User),
		Product:   ToProductDTO(it.Product),
		Order:     OrderSummary(it.Order),
		CreatedAt: it.CreatedAt,
	}
	if dto.Order == nil {
		dto.Order = OrderSummary(parent)
	}
	return dto
}

func ToOrderItemDTOs(items []models.OrderItem, parent *models.Order) []OrderItemDTO {
	out := make([]OrderItemDTO, 0, len(items))
	for i := range items {
		out = append(out, ToOrderItemDTO(&items[i], parent))
	}
	return out
}

func ToOrderDTO(o *models.Order) *OrderDTO {
	dto := OrderSummary(o)
	dto.OrderItemList = ToOrderItemDTOs(o.Items, o)
	return dto
}

func ToPaymentDTO(p *models.Payment) *PaymentDTO {
	return &PaymentDTO{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func ToPaymentDTOs(ps []models.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *ToPaymentDTO(&ps[i]))
	}
	return out
}
