package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MenuItem представляет позицию меню.
type MenuItem struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
}

// Category представляет категорию меню со списком блюд.
type Category struct {
	Name  string
	Items []MenuItem
}

// Menu представляет меню ресторана. Порядок категорий сохраняется при сериализации в JSON,
// поэтому меню хранится как срез, а не как map.
type Menu []Category

// FindDish ищет блюдо по названию во всех категориях без учета регистра.
func (m Menu) FindDish(name string) (MenuItem, bool) {
	name = strings.TrimSpace(name)
	for _, c := range m {
		for _, item := range c.Items {
			if strings.EqualFold(item.Name, name) {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// MarshalJSON кодирует меню как объект "категория -> список блюд".
func (m Menu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		items := c.Items
		if items == nil {
			items = []MenuItem{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON разбирает объект "категория -> список блюд", сохраняя порядок ключей.
func (m *Menu) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("меню: ожидался JSON-объект, получено %v", tok)
	}
	out := Menu{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("меню: некорректное имя категории %v", tok)
		}
		var items []MenuItem
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("меню: категория %q: %w", name, err)
		}
		out = append(out, Category{Name: name, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}
