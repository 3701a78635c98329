package step

// Product structure and shape representation entities.

type ApplicationContext struct {
	Application string
}

func (*ApplicationContext) Keyword() string { return "APPLICATION_CONTEXT" }
func (a *ApplicationContext) WriteParams(e *Encoder) {
	e.String(a.Application)
}

type ApplicationProtocolDefinition struct {
	Status                                string
	ApplicationInterpretedModelSchemaName string
	ApplicationProtocolYear               int
	Application                           Ref // ApplicationContext
}

func (*ApplicationProtocolDefinition) Keyword() string {
	return "APPLICATION_PROTOCOL_DEFINITION"
}
func (a *ApplicationProtocolDefinition) WriteParams(e *Encoder) {
	e.String(a.Status)
	e.String(a.ApplicationInterpretedModelSchemaName)
	e.Int(a.ApplicationProtocolYear)
	e.Ref(a.Application)
}

type ProductContext struct {
	Name             string
	FrameOfReference Ref // ApplicationContext
	DisciplineType   string
}

func (*ProductContext) Keyword() string { return "PRODUCT_CONTEXT" }
func (p *ProductContext) WriteParams(e *Encoder) {
	e.String(p.Name)
	e.Ref(p.FrameOfReference)
	e.String(p.DisciplineType)
}

type Product struct {
	ID               string
	Name             string
	Description      string
	FrameOfReference []Ref // ProductContext
}

func (*Product) Keyword() string { return "PRODUCT" }
func (p *Product) WriteParams(e *Encoder) {
	e.String(p.ID)
	e.String(p.Name)
	e.String(p.Description)
	e.Refs(p.FrameOfReference)
}

type ProductDefinitionContext struct {
	Name             string
	FrameOfReference Ref // ApplicationContext
	LifeCycleStage   string
}

func (*ProductDefinitionContext) Keyword() string { return "PRODUCT_DEFINITION_CONTEXT" }
func (p *ProductDefinitionContext) WriteParams(e *Encoder) {
	e.String(p.Name)
	e.Ref(p.FrameOfReference)
	e.String(p.LifeCycleStage)
}

type ProductDefinitionFormation struct {
	ID          string
	Description string
	OfProduct   Ref // Product
}

func (*ProductDefinitionFormation) Keyword() string { return "PRODUCT_DEFINITION_FORMATION" }
func (p *ProductDefinitionFormation) WriteParams(e *Encoder) {
	e.String(p.ID)
	e.String(p.Description)
	e.Ref(p.OfProduct)
}

type ProductDefinition struct {
	ID               string
	Description      string
	Formation        Ref // ProductDefinitionFormation
	FrameOfReference Ref // ProductDefinitionContext
}

func (*ProductDefinition) Keyword() string { return "PRODUCT_DEFINITION" }
func (p *ProductDefinition) WriteParams(e *Encoder) {
	e.String(p.ID)
	e.String(p.Description)
	e.Ref(p.Formation)
	e.Ref(p.FrameOfReference)
}

type ProductDefinitionShape struct {
	Name        string
	Description string
	Definition  Ref // ProductDefinition
}

func (*ProductDefinitionShape) Keyword() string { return "PRODUCT_DEFINITION_SHAPE" }
func (p *ProductDefinitionShape) WriteParams(e *Encoder) {
	e.String(p.Name)
	e.String(p.Description)
	e.Ref(p.Definition)
}

type AdvancedBrepShapeRepresentation struct {
	Name           string
	Items          []Ref
	ContextOfItems Ref
}

func (*AdvancedBrepShapeRepresentation) Keyword() string {
	return "ADVANCED_BREP_SHAPE_REPRESENTATION"
}
func (a *AdvancedBrepShapeRepresentation) WriteParams(e *Encoder) {
	e.String(a.Name)
	e.Refs(a.Items)
	e.Ref(a.ContextOfItems)
}

type ShapeDefinitionRepresentation struct {
	Definition         Ref // ProductDefinitionShape
	UsedRepresentation Ref // AdvancedBrepShapeRepresentation
}

func (*ShapeDefinitionRepresentation) Keyword() string {
	return "SHAPE_DEFINITION_REPRESENTATION"
}
func (s *ShapeDefinitionRepresentation) WriteParams(e *Encoder) {
	e.Ref(s.Definition)
	e.Ref(s.UsedRepresentation)
}

// Unknown carries an instance this package has no type for. With an empty
// Keyword the Args are joined and written as-is, which is how complex
// instances such as ( LENGTH_UNIT() NAMED_UNIT(*) SI_UNIT(.MILLI.,.METRE.) )
// are expressed.
type Unknown struct {
	Name string
	Args []string
}

func (u *Unknown) Keyword() string { return u.Name }
func (u *Unknown) WriteParams(e *Encoder) {
	for _, a := range u.Args {
		e.Raw(a)
	}
}
