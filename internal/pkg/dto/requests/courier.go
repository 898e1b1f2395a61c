package requests

type CreateCourier struct {
	Matricule       string         `validate:"required,max=64"`
	NomAdherent     string         `validate:"required,max=255"`
	NomBeneficiaire string         `validate:"omitempty,max=255"`
	Files           []SelectedFile `validate:"required,min=1"`
	Types           []string       `validate:"required,min=1,dive,oneof=bulletin ordonnance"`
}

type AppendCourierFiles struct {
	CourierID int64          `validate:"required,gte=1"`
	Files     []SelectedFile `validate:"required,min=1"`
	Types     []string       `validate:"required,min=1,dive,oneof=bulletin ordonnance"`
}
