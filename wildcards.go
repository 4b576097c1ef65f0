package riptide

// AnyStatusCode starts a wildcard binding over the StatusCode navigator's
// attribute type.
func AnyStatusCode() partialBinding[int] {
	return Any[int]()
}

// AnyStatus starts a wildcard binding over the Status navigator's
// attribute type.
func AnyStatus() partialBinding[Status] {
	return Any[Status]()
}

// AnySeries starts a wildcard binding over the Series navigator's
// attribute type.
func AnySeries() partialBinding[Series] {
	return Any[Series]()
}

// AnyContentType starts a wildcard binding over the ContentType
// navigator's attribute type.
func AnyContentType() partialBinding[MediaType] {
	return Any[MediaType]()
}

// AnyReasonPhrase starts a wildcard binding over the ReasonPhrase
// navigator's attribute type.
func AnyReasonPhrase() partialBinding[string] {
	return Any[string]()
}
