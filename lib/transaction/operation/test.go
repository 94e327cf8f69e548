package operation

func MakeTestCreateVote(endsAt uint64, options ...string) Operation {
	if len(options) < 1 {
		options = []string{"Yes", "No"}
	}

	return Operation{
		H: Header{Type: TypeCreateVote},
		B: NewCreateVote("showme", "findme", endsAt, options...),
	}
}

func MakeTestVote(option uint64) Operation {
	return Operation{
		H: Header{Type: TypeVote},
		B: NewVote(option),
	}
}

func MakeTestOptIn() Operation {
	return Operation{
		H: Header{Type: TypeOptIn},
		B: OptIn{},
	}
}
