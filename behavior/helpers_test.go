package behavior

func descs(types ...string) []TypeDescriptor {
	out := make([]TypeDescriptor, 0, len(types))
	for _, t := range types {
		out = append(out, TypeDescriptor{Type: t})
	}
	return out
}

func vocab(blocks, styles, entities []string) Vocabulary {
	return Config{
		BlockTypes:     descs(blocks...),
		InlineStyles:   descs(styles...),
		EntityTypes:    descs(entities...),
		MaxListNesting: 1,
	}.Vocabulary()
}
