package common

// AuthHeaderName is the gRPC metadata key carrying the session credential.
const AuthHeaderName = "authorization"

// BearerPrefix is stripped from the credential value when present.
const BearerPrefix = "Bearer "

// ParentNoChange is the sentinel value of the parent_id field on directory
// updates meaning "leave the parent as is". An empty parent_id means "move
// to the root".
const ParentNoChange = "no_change"

// RootParentID is the stored parent reference of top-level objects.
const RootParentID = ""
