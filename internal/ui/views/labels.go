package views

import "groupgrip/internal/domain"

// UI strings
const (
	TitleText        = "Группы"
	PrivacyLabel     = "Приватность"
	AvatarColorLabel = "Цвет аватара:"
	HasFriendsLabel  = "Друзья в группе:"
	TypeLabel        = "Тип:"
	MembersLabel     = "Участники:"
	FriendsLabel     = "Друзья:"
	ClosedText       = "Closed"
	OpenText         = "Open"
)

var fieldLabels = map[domain.FilterField]string{
	domain.FieldPrivacy:     PrivacyLabel,
	domain.FieldAvatarColor: AvatarColorLabel,
	domain.FieldHasFriends:  HasFriendsLabel,
}

// optionLabels holds the text shown for each filter value
var optionLabels = map[domain.FilterField]map[string]string{
	domain.FieldPrivacy: {
		domain.OptionAll:     "Все",
		domain.PrivacyClosed: "Закрытая",
		domain.PrivacyOpen:   "Открытая",
	},
	domain.FieldAvatarColor: {
		domain.OptionAll: "All",
		"red":            "Красный",
		"green":          "Зеленый",
		"blue":           "Синий",
		"yellow":         "Желтый",
		"purple":         "Фиолетовый",
		"white":          "Белый",
		"orange":         "Оранжевый",
	},
	domain.FieldHasFriends: {
		domain.OptionAll:  "Все",
		domain.FriendsYes: "Да",
		domain.FriendsNo:  "Нет",
	},
}

// FieldLabel returns the label shown before a filter control
func FieldLabel(field domain.FilterField) string {
	return fieldLabels[field]
}

// OptionLabel returns the display text of a filter value
func OptionLabel(field domain.FilterField, value string) string {
	if label, ok := optionLabels[field][value]; ok {
		return label
	}
	return value
}
