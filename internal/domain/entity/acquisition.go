package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AcquisitionKind режим съёмки
type AcquisitionKind int

const (
	KindUnknown AcquisitionKind = iota // не удалось определить
	KindGround                         // наземная съёмка
	KindCanopy                         // съёмка кроны сверху
)

const (
	groundToken = "GC"
	canopyToken = "CC"
	tokenSep    = "-"
	typeIndex   = 2
)

// AcquisitionType режим съёмки, определённый по имени файла.
// Для KindUnknown в Token хранится исходная часть имени (пустая, если имя некорректно).
type AcquisitionType struct {
	Kind  AcquisitionKind
	Token string
}

func Ground() AcquisitionType { return AcquisitionType{Kind: KindGround, Token: groundToken} }

func Canopy() AcquisitionType { return AcquisitionType{Kind: KindCanopy, Token: canopyToken} }

func Unknown(token string) AcquisitionType {
	return AcquisitionType{Kind: KindUnknown, Token: token}
}

// String возвращает метку для отчёта: GROUND, CANOPY или исходный токен.
func (t AcquisitionType) String() string {
	switch t.Kind {
	case KindGround:
		return "GROUND"
	case KindCanopy:
		return "CANOPY"
	default:
		return t.Token
	}
}

// Known сообщает, есть ли для типа алгоритм измерения.
func (t AcquisitionType) Known() bool {
	return t.Kind == KindGround || t.Kind == KindCanopy
}

// Err описывает, почему тип не распознан. Для известных типов nil.
func (t AcquisitionType) Err() error {
	switch {
	case t.Known():
		return nil
	case t.Token == "":
		return ErrMalformedFilename
	default:
		return fmt.Errorf("%w %q", ErrUnknownAcquisitionType, t.Token)
	}
}

// ResolveType определяет режим съёмки по имени файла вида XX01-20210806-CC.JPG.
func ResolveType(path string) AcquisitionType {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	tokens := strings.Split(stem, tokenSep)
	if len(tokens) <= typeIndex {
		return Unknown("")
	}

	switch tokens[typeIndex] {
	case groundToken:
		return Ground()
	case canopyToken:
		return Canopy()
	default:
		return Unknown(tokens[typeIndex])
	}
}
