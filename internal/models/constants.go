package models

// DefaultLabelColor is applied when a label is created without a color
const DefaultLabelColor = "#808080"

// MaxTitleLength is the longest task title accepted by the service layer
const MaxTitleLength = 255

// AppendPosition asks the repository to place a task at the end of its column
const AppendPosition = -1
