package grammar

import "github.com/DRvader/xml-schema-sub000/internal/diag"

// validate runs the eager grammar checks. Violations found here are always
// fatal and are never retried by the resolution driver.
func (s *Schema) validate() error {
	for _, el := range s.Elements {
		if el.Name == "" {
			return diag.Violationf("element", "top-level element without name")
		}

		if err := validateElement(el); err != nil {
			return err
		}
	}

	for _, attr := range s.Attributes {
		if attr.Name == "" {
			return diag.Violationf("attribute", "top-level attribute without name")
		}
	}

	for _, ct := range s.ComplexTypes {
		if ct.Name == "" {
			return diag.Violationf("complexType", "top-level complexType without name")
		}

		if err := validateComplexType(ct); err != nil {
			return err
		}
	}

	for _, st := range s.SimpleTypes {
		if st.Name == "" {
			return diag.Violationf("simpleType", "top-level simpleType without name")
		}

		if err := validateSimpleType(st); err != nil {
			return err
		}
	}

	for _, g := range s.Groups {
		if g.Name == "" {
			return diag.Violationf("group", "top-level group without name")
		}

		if err := validateGroup(g); err != nil {
			return err
		}
	}

	for _, ag := range s.AttributeGroups {
		if ag.Name == "" {
			return diag.Violationf("attributeGroup", "top-level attributeGroup without name")
		}
	}

	return nil
}

func validateElement(el *Element) error {
	if el.Name != "" && el.Ref != "" {
		return diag.Violationf("element", "%s: name and ref are mutually exclusive", el.Name)
	}

	if el.Name == "" && el.Ref == "" {
		return diag.Violationf("element", "neither name nor ref given")
	}

	if el.ComplexType != nil && el.SimpleType != nil {
		return diag.Violationf("element", "%s: inline complexType and simpleType are mutually exclusive", el.Name)
	}

	if el.Ref != "" && (el.Type != "" || el.ComplexType != nil || el.SimpleType != nil) {
		return diag.Violationf("element", "ref %s: ref excludes type declarations", el.Ref)
	}

	if el.Type != "" && (el.ComplexType != nil || el.SimpleType != nil) {
		return diag.Violationf("element", "%s: type attribute and inline type are mutually exclusive", el.Name)
	}

	if el.ComplexType != nil {
		return validateComplexType(el.ComplexType)
	}

	if el.SimpleType != nil {
		return validateSimpleType(el.SimpleType)
	}

	return nil
}

func validateComplexType(ct *ComplexType) error {
	particles := 0
	for _, present := range []bool{ct.Sequence != nil, ct.Choice != nil, ct.Group != nil} {
		if present {
			particles++
		}
	}

	if particles > 1 {
		return diag.Violationf("complexType", "%s: sequence, choice and group are mutually exclusive", ct.Name)
	}

	if ct.ComplexContent != nil && ct.SimpleContent != nil {
		return diag.Violationf("complexType", "%s: complexContent and simpleContent are mutually exclusive", ct.Name)
	}

	if (ct.ComplexContent != nil || ct.SimpleContent != nil) && particles > 0 {
		return diag.Violationf("complexType", "%s: derived content excludes direct particles", ct.Name)
	}

	if ct.ComplexContent != nil {
		if err := validateDerivation(ct.Name, "complexContent", ct.ComplexContent.Extension, ct.ComplexContent.Restriction); err != nil {
			return err
		}
	}

	if ct.SimpleContent != nil {
		if err := validateDerivation(ct.Name, "simpleContent", ct.SimpleContent.Extension, ct.SimpleContent.Restriction); err != nil {
			return err
		}
	}

	return validateParticles(ct.Sequence, ct.Choice)
}

func validateDerivation(name, construct string, ext *Extension, res *Restriction) error {
	if ext != nil && res != nil {
		return diag.Violationf(construct, "%s: extension and restriction are mutually exclusive", name)
	}

	if ext == nil && res == nil {
		return diag.Violationf(construct, "%s: extension or restriction required", name)
	}

	if ext != nil && ext.Base == "" {
		return diag.Violationf("extension", "%s: base attribute required", name)
	}

	if res != nil && res.Base == "" && res.SimpleType == nil {
		return diag.Violationf("restriction", "%s: base attribute required", name)
	}

	return nil
}

func validateSimpleType(st *SimpleType) error {
	children := 0
	for _, present := range []bool{st.Restriction != nil, st.List != nil, st.Union != nil} {
		if present {
			children++
		}
	}

	if children != 1 {
		return diag.Violationf("simpleType", "%s: exactly one of restriction, list or union required", st.Name)
	}

	if st.Restriction != nil && st.Restriction.Base == "" && st.Restriction.SimpleType == nil {
		return diag.Violationf("restriction", "%s: base attribute required", st.Name)
	}

	if st.List != nil && st.List.ItemType == "" && st.List.SimpleType == nil {
		return diag.Violationf("list", "%s: itemType or inline simpleType required", st.Name)
	}

	return nil
}

func validateGroup(g *Group) error {
	if g.Name != "" && g.Ref != "" {
		return diag.Violationf("group", "%s: name and ref are mutually exclusive", g.Name)
	}

	if g.Sequence != nil && g.Choice != nil {
		return diag.Violationf("group", "%s: sequence and choice are mutually exclusive", g.Name)
	}

	return validateParticles(g.Sequence, g.Choice)
}

// validateParticles walks sequence/choice trees checking nested elements
// and group references.
func validateParticles(seq *Sequence, ch *Choice) error {
	if seq != nil {
		for _, el := range seq.Elements {
			if err := validateElement(el); err != nil {
				return err
			}
		}

		for _, nested := range seq.Sequences {
			if err := validateParticles(nested, nil); err != nil {
				return err
			}
		}

		for _, nested := range seq.Choices {
			if err := validateParticles(nil, nested); err != nil {
				return err
			}
		}

		for _, g := range seq.Groups {
			if g.Ref == "" {
				return diag.Violationf("group", "particle group reference without ref")
			}
		}
	}

	if ch != nil {
		for _, el := range ch.Elements {
			if err := validateElement(el); err != nil {
				return err
			}
		}

		for _, nested := range ch.Sequences {
			if err := validateParticles(nested, nil); err != nil {
				return err
			}
		}

		for _, nested := range ch.Choices {
			if err := validateParticles(nil, nested); err != nil {
				return err
			}
		}

		for _, g := range ch.Groups {
			if g.Ref == "" {
				return diag.Violationf("group", "particle group reference without ref")
			}
		}
	}

	return nil
}
