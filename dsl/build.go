package dsl

// Build runs the parser once and assembles every artifact the
// configuration asks for. The type alias and the normalized model are
// always produced; interface, schema, and example are gated by the
// config flags. Parse errors propagate unchanged; the generators
// themselves are total over any valid model and never fail.
func Build(raw string, cfg Config) (*Result, error) {
	model, err := Parse(raw, cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		TypeName: model.TypeName,
		Model:    model,
		TypeText: GenerateType(model.TypeName, model.Properties),
	}

	if cfg.EmitInterface {
		result.InterfaceText = GenerateInterface(model.TypeName, model.Properties)
	}
	if cfg.EmitSchema {
		result.SchemaText = GenerateSchema(model.TypeName, model.Properties, cfg.StrictSchema)
	}
	if cfg.EmitExample {
		result.Example = GenerateExample(model.Properties)
	}

	return result, nil
}
