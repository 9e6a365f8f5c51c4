package catalog

import "github.com/kimranazman/mymandarin/pkg/models"

// Builtin returns the starter catalog used when no catalog file is
// configured, so a first run works out of the box.
func Builtin() *Catalog {
	return New(builtinWords)
}

var builtinWords = []models.Word{
	// Numbers
	{Pinyin: "yī", Hanzi: "一", Meaning: "one", Category: "Numbers"},
	{Pinyin: "èr", Hanzi: "二", Meaning: "two", Category: "Numbers"},
	{Pinyin: "sān", Hanzi: "三", Meaning: "three", Category: "Numbers"},
	{Pinyin: "sì", Hanzi: "四", Meaning: "four", Notes: "sounds like 死 (death), considered unlucky", Category: "Numbers"},
	{Pinyin: "wǔ", Hanzi: "五", Meaning: "five", Category: "Numbers"},
	{Pinyin: "liù", Hanzi: "六", Meaning: "six", Category: "Numbers"},
	{Pinyin: "qī", Hanzi: "七", Meaning: "seven", Category: "Numbers"},
	{Pinyin: "bā", Hanzi: "八", Meaning: "eight", Notes: "lucky number", Category: "Numbers"},
	{Pinyin: "jiǔ", Hanzi: "九", Meaning: "nine", Category: "Numbers"},
	{Pinyin: "shí", Hanzi: "十", Meaning: "ten", Category: "Numbers"},

	// Family
	{Pinyin: "mā ma", Hanzi: "妈妈", Meaning: "mom", Components: []string{"女", "马"}, Category: "Family"},
	{Pinyin: "bà ba", Hanzi: "爸爸", Meaning: "dad", Components: []string{"父", "巴"}, Category: "Family"},
	{Pinyin: "gē ge", Hanzi: "哥哥", Meaning: "older brother", Category: "Family"},
	{Pinyin: "jiě jie", Hanzi: "姐姐", Meaning: "older sister", Category: "Family"},
	{Pinyin: "dì di", Hanzi: "弟弟", Meaning: "younger brother", Category: "Family"},
	{Pinyin: "mèi mei", Hanzi: "妹妹", Meaning: "younger sister", Category: "Family"},
	{Pinyin: "jiā", Hanzi: "家", Meaning: "family; home", Components: []string{"宀", "豕"}, Notes: "a pig under a roof", Category: "Family"},

	// Basics
	{Pinyin: "nǐ hǎo", Hanzi: "你好", Meaning: "hello", Category: "Basics"},
	{Pinyin: "xiè xie", Hanzi: "谢谢", Meaning: "thank you", Category: "Basics"},
	{Pinyin: "zài jiàn", Hanzi: "再见", Meaning: "goodbye", Category: "Basics"},
	{Pinyin: "duì bu qǐ", Hanzi: "对不起", Meaning: "sorry", Category: "Basics"},
	{Pinyin: "wǒ", Hanzi: "我", Meaning: "I; me", Category: "Basics"},
	{Pinyin: "nǐ", Hanzi: "你", Meaning: "you", Category: "Basics"},
	{Pinyin: "tā", Hanzi: "他", Meaning: "he; him", Category: "Basics"},
	{Pinyin: "hǎo", Hanzi: "好", Meaning: "good", Components: []string{"女", "子"}, Category: "Basics"},

	// Food
	{Pinyin: "chī", Hanzi: "吃", Meaning: "to eat", Category: "Food"},
	{Pinyin: "hē", Hanzi: "喝", Meaning: "to drink", Category: "Food"},
	{Pinyin: "mǐ fàn", Hanzi: "米饭", Meaning: "cooked rice", Category: "Food"},
	{Pinyin: "miàn tiáo", Hanzi: "面条", Meaning: "noodles", Category: "Food"},
	{Pinyin: "chá", Hanzi: "茶", Meaning: "tea", Category: "Food"},
	{Pinyin: "shuǐ", Hanzi: "水", Meaning: "water", Category: "Food"},
}
